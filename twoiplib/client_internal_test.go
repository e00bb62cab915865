package twoiplib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type NewClientTestSuite struct {
	suite.Suite
}

func (suite *NewClientTestSuite) TestDefaults() {
	client, err := New(Options{})

	suite.NoError(err)
	suite.Equal(DefaultBaseURL, client.baseURL.String())
	suite.Equal(DefaultConnections, client.connections)
	suite.Equal(DefaultTimeout, client.timeout)
	suite.Equal("twoip-go/"+Version, client.userAgent)
	suite.False(client.strict)
	suite.Nil(client.cache)
	suite.NotNil(client.logger)
	suite.Len(client.stats, 2)
	suite.Equal(LookupGeo, client.stats[LookupGeo].Kind)
	suite.Equal(LookupProvider, client.stats[LookupProvider].Kind)
}

func (suite *NewClientTestSuite) TestClampsConnections() {
	client, err := New(Options{Connections: -5})

	suite.NoError(err)
	suite.Equal(DefaultConnections, client.connections)

	client, err = New(Options{Connections: MaxConnections + 1})

	suite.NoError(err)
	suite.Equal(MaxConnections, client.connections)
}

func (suite *NewClientTestSuite) TestClampsTimeout() {
	client, err := New(Options{Timeout: time.Millisecond})

	suite.NoError(err)
	suite.Equal(MinTimeout, client.timeout)

	client, err = New(Options{Timeout: time.Hour})

	suite.NoError(err)
	suite.Equal(MaxTimeout, client.timeout)
}

func (suite *NewClientTestSuite) TestBadBaseURL() {
	_, err := New(Options{BaseURL: "://"})

	suite.Error(err)
}

func (suite *NewClientTestSuite) TestBadScheme() {
	_, err := New(Options{BaseURL: "ftp://example.com"})

	suite.Error(err)
}

func (suite *NewClientTestSuite) TestCloseIsIdempotent() {
	client, err := New(Options{})

	suite.NoError(err)

	client.Close()
	client.Close()
}

func (suite *NewClientTestSuite) TestOwnTransport() {
	client, err := New(Options{})

	suite.NoError(err)

	httpClient, cleanup := client.acquireHTTPClient()

	suite.NotNil(httpClient)
	suite.NotNil(cleanup)

	cleanup()
}

func TestNewClient(t *testing.T) {
	suite.Run(t, &NewClientTestSuite{})
}
