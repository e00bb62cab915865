package twoiplib

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type recordingDoer struct {
	req  *http.Request
	resp *http.Response
	err  error
}

func (r *recordingDoer) Do(req *http.Request) (*http.Response, error) {
	r.req = req

	return r.resp, r.err
}

type GatewayTestSuite struct {
	suite.Suite

	baseURL *url.URL
}

func (suite *GatewayTestSuite) SetupSuite() {
	parsed, err := url.Parse(DefaultBaseURL)
	if err != nil {
		panic(err)
	}

	suite.baseURL = parsed
}

func (suite *GatewayTestSuite) TestBuildURLWithoutKey() {
	gw := gateway{baseURL: suite.baseURL}

	suite.Equal("https://api.2ip.ua/geo.json?ip=192.0.2.1",
		gw.buildURL(LookupGeo, netip.MustParseAddr("192.0.2.1")))
	suite.Equal("https://api.2ip.ua/provider.json?ip=2001%3Adb8%3A%3A1",
		gw.buildURL(LookupProvider, netip.MustParseAddr("2001:db8::1")))
}

func (suite *GatewayTestSuite) TestBuildURLWithKey() {
	gw := gateway{baseURL: suite.baseURL, key: "sekret"}

	suite.Equal("https://api.2ip.ua/geo.json?ip=192.0.2.1&key=sekret",
		gw.buildURL(LookupGeo, netip.MustParseAddr("192.0.2.1")))
}

func (suite *GatewayTestSuite) TestBuildURLKeepsBasePath() {
	parsed, err := url.Parse("https://example.com/api/v2")

	suite.NoError(err)

	gw := gateway{baseURL: parsed}

	suite.Equal("https://example.com/api/v2/geo.json?ip=192.0.2.1",
		gw.buildURL(LookupGeo, netip.MustParseAddr("192.0.2.1")))
}

func (suite *GatewayTestSuite) TestFetchSetsAcceptHeader() {
	doer := &recordingDoer{
		resp: &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       ioutil.NopCloser(strings.NewReader("{}")),
		},
	}
	gw := gateway{client: doer, baseURL: suite.baseURL}

	outcome := gw.fetch(context.Background(), LookupGeo, netip.MustParseAddr("192.0.2.1"))

	suite.NoError(outcome.err)
	suite.Equal("application/json", doer.req.Header.Get("Accept"))
	suite.Equal(http.StatusOK, outcome.statusCode)
	suite.Equal("application/json", outcome.contentType)
	suite.Equal("{}", string(outcome.body))
	suite.Equal(netip.MustParseAddr("192.0.2.1"), outcome.addr)
}

func (suite *GatewayTestSuite) TestFetchTransportError() {
	doer := &recordingDoer{err: errors.New("boom")}
	gw := gateway{client: doer, baseURL: suite.baseURL}

	outcome := gw.fetch(context.Background(), LookupGeo, netip.MustParseAddr("192.0.2.1"))

	suite.Error(outcome.err)
	suite.Contains(outcome.err.Error(), "boom")
	suite.Zero(outcome.statusCode)
	suite.Empty(outcome.body)
}

func TestGateway(t *testing.T) {
	suite.Run(t, &GatewayTestSuite{})
}
