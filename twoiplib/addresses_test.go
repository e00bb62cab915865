package twoiplib_test

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/2ip-api/twoip/twoiplib"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AddressesTestSuite struct {
	suite.Suite

	loggerMock *LoggerMock
}

func (suite *AddressesTestSuite) SetupTest() {
	suite.loggerMock = &LoggerMock{}
}

func (suite *AddressesTestSuite) TearDownTest() {
	suite.loggerMock.AssertExpectations(suite.T())
}

func (suite *AddressesTestSuite) TestEmpty() {
	addrs, err := twoiplib.NormalizeAddresses(nil, true, suite.loggerMock)

	suite.NoError(err)
	suite.Empty(addrs)
}

func (suite *AddressesTestSuite) TestTrimsWhitespace() {
	addrs, err := twoiplib.NormalizeAddresses(
		[]string{"  192.0.2.1\t", "\n2001:db8::1 "}, true, suite.loggerMock)

	suite.NoError(err)
	suite.Equal([]netip.Addr{
		netip.MustParseAddr("192.0.2.1"),
		netip.MustParseAddr("2001:db8::1"),
	}, addrs)
}

func (suite *AddressesTestSuite) TestDedupKeepsFirstOccurrence() {
	addrs, err := twoiplib.NormalizeAddresses(
		[]string{"192.0.2.2", "192.0.2.1", "192.0.2.2"}, true, suite.loggerMock)

	suite.NoError(err)
	suite.Equal([]netip.Addr{
		netip.MustParseAddr("192.0.2.2"),
		netip.MustParseAddr("192.0.2.1"),
	}, addrs)
}

func (suite *AddressesTestSuite) TestUnmapsMappedAddresses() {
	addrs, err := twoiplib.NormalizeAddresses(
		[]string{"::ffff:192.0.2.1", "192.0.2.1"}, true, suite.loggerMock)

	suite.NoError(err)
	suite.Equal([]netip.Addr{netip.MustParseAddr("192.0.2.1")}, addrs)
}

func (suite *AddressesTestSuite) TestStrictFailsOnFirstInvalid() {
	addrs, err := twoiplib.NormalizeAddresses(
		[]string{"192.0.2.1", "host.example.com"}, true, suite.loggerMock)

	suite.Nil(addrs)

	var invalidErr *twoiplib.InvalidAddressError

	suite.True(errors.As(err, &invalidErr))
	suite.Equal("host.example.com", invalidErr.Input)
}

func (suite *AddressesTestSuite) TestLenientSkipsAndLogs() {
	suite.loggerMock.On("InvalidAddress", "host.example.com", mock.Anything).Once()

	addrs, err := twoiplib.NormalizeAddresses(
		[]string{"192.0.2.1", "host.example.com", "192.0.2.2"}, false, suite.loggerMock)

	suite.NoError(err)
	suite.Equal([]netip.Addr{
		netip.MustParseAddr("192.0.2.1"),
		netip.MustParseAddr("192.0.2.2"),
	}, addrs)
}

func (suite *AddressesTestSuite) TestLenientNilLogger() {
	addrs, err := twoiplib.NormalizeAddresses([]string{"garbage", "::1"}, false, nil)

	suite.NoError(err)
	suite.Equal([]netip.Addr{netip.MustParseAddr("::1")}, addrs)
}

func (suite *AddressesTestSuite) TestIdempotent() {
	first, err := twoiplib.NormalizeAddresses(
		[]string{"2001:DB8::1", "::ffff:192.0.2.1"}, true, suite.loggerMock)

	suite.NoError(err)

	inputs := make([]string, 0, len(first))

	for _, v := range first {
		inputs = append(inputs, v.String())
	}

	second, err := twoiplib.NormalizeAddresses(inputs, true, suite.loggerMock)

	suite.NoError(err)
	suite.Equal(first, second)
}

func (suite *AddressesTestSuite) TestDedupAddrs() {
	deduped := twoiplib.DedupAddrs([]netip.Addr{
		netip.MustParseAddr("192.0.2.1"),
		netip.MustParseAddr("::ffff:192.0.2.1"),
		netip.MustParseAddr("2001:db8::1"),
		netip.MustParseAddr("192.0.2.1"),
	})

	suite.Equal([]netip.Addr{
		netip.MustParseAddr("192.0.2.1"),
		netip.MustParseAddr("2001:db8::1"),
	}, deduped)
}

func TestAddresses(t *testing.T) {
	suite.Run(t, &AddressesTestSuite{})
}
