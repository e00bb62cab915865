package twoiplib_test

import (
	"net/netip"

	"github.com/2ip-api/twoip/twoiplib"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/mock"
)

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(addr netip.Addr, kind twoiplib.LookupKind, err error) {
	m.Called(addr, kind, err)
}

func (m *LoggerMock) InvalidAddress(input string, err error) {
	m.Called(input, err)
}

func geoURL(addr string) string {
	return twoiplib.DefaultBaseURL + "/geo.json?ip=" + addr
}

func providerURL(addr string) string {
	return twoiplib.DefaultBaseURL + "/provider.json?ip=" + addr
}

// jsonResponder is NewStringResponder which also sets a content type.
// The client rejects responses without application/json in it.
func jsonResponder(status int, body string) httpmock.Responder {
	resp := httpmock.NewStringResponse(status, body)

	resp.Header.Set("Content-Type", "application/json")

	return httpmock.ResponderFromResponse(resp)
}
