package twoiplib_test

import (
	"net/http"
	"net/netip"
	"testing"

	"github.com/2ip-api/twoip/twoiplib"
	"github.com/stretchr/testify/suite"
)

type ResultTestSuite struct {
	suite.Suite
}

func (suite *ResultTestSuite) Make(addr string) twoiplib.Result {
	return twoiplib.Result{IP: netip.MustParseAddr(addr)}
}

func (suite *ResultTestSuite) TestSuccess() {
	suite.False(twoiplib.Result{}.Success())
	suite.False(twoiplib.Result{HTTPCode: http.StatusOK, Err: "boom"}.Success())
	suite.False(twoiplib.Result{HTTPCode: http.StatusTooManyRequests}.Success())
	suite.True(twoiplib.Result{HTTPCode: http.StatusOK}.Success())
}

func (suite *ResultTestSuite) TestIsPrivate() {
	suite.True(suite.Make("10.1.2.3").IsPrivate())
	suite.True(suite.Make("172.20.0.1").IsPrivate())
	suite.True(suite.Make("192.168.1.1").IsPrivate())
	suite.True(suite.Make("fd00::1").IsPrivate())

	suite.False(suite.Make("127.0.0.1").IsPrivate())
	suite.False(suite.Make("169.254.10.10").IsPrivate())
	suite.False(suite.Make("8.8.8.8").IsPrivate())
}

func (suite *ResultTestSuite) TestIsGlobal() {
	suite.True(suite.Make("8.8.8.8").IsGlobal())
	suite.True(suite.Make("2606:4700::1111").IsGlobal())
	suite.True(suite.Make("192.88.99.1").IsGlobal())
	suite.True(suite.Make("2002::1").IsGlobal())
	suite.True(suite.Make("64:ff9b::1").IsGlobal())

	suite.False(suite.Make("10.0.0.1").IsGlobal())
	suite.False(suite.Make("127.0.0.1").IsGlobal())
	suite.False(suite.Make("169.254.10.10").IsGlobal())
	suite.False(suite.Make("198.18.0.1").IsGlobal())
	suite.False(suite.Make("2001:db8::1").IsGlobal())
	suite.False(suite.Make("ff02::1").IsGlobal())
}

func (suite *ResultTestSuite) TestSpecialDesignation() {
	suite.Equal("Loopback", suite.Make("127.0.0.1").SpecialDesignation())
	suite.Equal("Documentation (TEST-NET-1)", suite.Make("192.0.2.1").SpecialDesignation())
	suite.Equal("Private-Use", suite.Make("10.200.0.1").SpecialDesignation())
	suite.Equal("Shared Address Space", suite.Make("100.64.1.1").SpecialDesignation())
	suite.Equal("Limited Broadcast", suite.Make("255.255.255.255").SpecialDesignation())
	suite.Equal("Unique-Local", suite.Make("fc00::1").SpecialDesignation())
	suite.Equal("Loopback Address", suite.Make("::1").SpecialDesignation())
	suite.Empty(suite.Make("8.8.8.8").SpecialDesignation())
}

func (suite *ResultTestSuite) TestFamiliesDoNotOverlap() {
	suite.Empty(suite.Make("a00::1").SpecialDesignation())
	suite.True(suite.Make("a00::1").IsGlobal())
}

func (suite *ResultTestSuite) TestMappedAddressChecksAsIPv4() {
	suite.Equal("Private-Use", suite.Make("::ffff:10.0.0.1").SpecialDesignation())
	suite.True(suite.Make("::ffff:10.0.0.1").IsPrivate())
}

func TestResult(t *testing.T) {
	suite.Run(t, &ResultTestSuite{})
}
