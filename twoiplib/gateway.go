package twoiplib

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/netip"
	"net/url"
	"path"
)

// rawOutcome is a result of a single HTTP attempt for a single address.
// Either err or body/statusCode/contentType is populated, never both.
type rawOutcome struct {
	addr        netip.Addr
	statusCode  int
	contentType string
	body        []byte
	err         error
}

type gateway struct {
	client  HTTPClient
	baseURL *url.URL
	key     string
}

func (g gateway) fetch(ctx context.Context, kind LookupKind, addr netip.Addr) rawOutcome {
	outcome := rawOutcome{addr: addr}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, g.buildURL(kind, addr), nil)

	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		outcome.err = fmt.Errorf("cannot send a request: %w", err)

		return outcome
	}

	defer flushResponse(resp.Body)

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		outcome.err = fmt.Errorf("cannot read a response body: %w", err)

		return outcome
	}

	outcome.statusCode = resp.StatusCode
	outcome.contentType = resp.Header.Get("Content-Type")
	outcome.body = body

	return outcome
}

func (g gateway) buildURL(kind LookupKind, addr netip.Addr) string {
	getQuery := url.Values{}

	getQuery.Set("ip", addr.String())

	if g.key != "" {
		getQuery.Set("key", g.key)
	}

	u := *g.baseURL
	u.Path = path.Join(u.Path, kind.Resource())
	u.RawQuery = getQuery.Encode()

	return u.String()
}
