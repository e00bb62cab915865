package twoiplib

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type httpClient struct {
	client    HTTPClient
	userAgent string
	limiter   *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	if err := h.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("cannot acquire a rate limiter slot: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot perform a request: %w", err)
	}

	return resp, nil
}

// NewHTTPClient wraps a given client with a rate limiter and a default
// User-Agent header. Responses are returned as is, HTTP error statuses
// included: callers are expected to interpret status codes themselves.
//
// A zero rateEvery disables rate limiting.
func NewHTTPClient(client HTTPClient,
	userAgent string,
	rateEvery time.Duration,
	rateBurst int) HTTPClient {
	if rateBurst < 1 {
		rateBurst = 1
	}

	return httpClient{
		client:    client,
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Every(rateEvery), rateBurst),
	}
}
