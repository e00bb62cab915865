package api

import (
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/2ip-api/twoip/twoiplib"
)

func TestBuildGeo(t *testing.T) {
	records := []twoiplib.GeoResult{
		{
			Result: twoiplib.Result{
				IP:       netip.MustParseAddr("192.0.2.1"),
				HTTPCode: 200,
			},
			Country: "Ukraine",
			City:    "Kyiv",
		},
		{
			Result: twoiplib.Result{
				IP:       netip.MustParseAddr("192.0.2.2"),
				HTTPCode: 429,
				Err:      "Rate limit exceeded",
			},
		},
	}

	resp := &geoResolveResponseStruct{}
	resp.Build(twoiplib.NewGeoResults(records))

	assert.Len(t, resp.Results, 2)
	assert.Equal(t, resp.Results["192.0.2.1"].City, "Kyiv")
	assert.True(t, resp.Results["192.0.2.1"].Success())
	assert.False(t, resp.Results["192.0.2.2"].Success())
	assert.Equal(t, resp.Results["192.0.2.2"].Err, "Rate limit exceeded")
}

func TestBuildProvider(t *testing.T) {
	records := []twoiplib.ProviderResult{
		{
			Result: twoiplib.Result{
				IP:       netip.MustParseAddr("192.0.2.1"),
				HTTPCode: 200,
			},
			Name:             "Example Networks",
			AutonomousSystem: 197695,
		},
	}

	resp := &providerResolveResponseStruct{}
	resp.Build(twoiplib.NewProviderResults(records))

	assert.Len(t, resp.Results, 1)
	assert.Equal(t, resp.Results["192.0.2.1"].Name, "Example Networks")
	assert.Equal(t, resp.Results["192.0.2.1"].AutonomousSystem, int64(197695))
}

func TestBuildUsageStatsSorted(t *testing.T) {
	stats := map[twoiplib.LookupKind]*twoiplib.UsageStats{
		twoiplib.LookupProvider: {Kind: twoiplib.LookupProvider},
		twoiplib.LookupGeo:      {Kind: twoiplib.LookupGeo},
	}

	resp := &usageStatsResponseStruct{}
	resp.Build(stats)

	assert.Len(t, resp.Results, 2)
	assert.Equal(t, resp.Results[0].Kind, twoiplib.LookupGeo)
	assert.Equal(t, resp.Results[1].Kind, twoiplib.LookupProvider)
}

func TestRequestUnmarshalOk(t *testing.T) {
	req := &ipResolveRequestStruct{}
	err := json.Unmarshal([]byte(`{"ips": ["192.0.2.1", "2001:db8::1", "::ffff:192.0.2.7"]}`), req)

	assert.Nil(t, err)
	assert.Equal(t, req.Ips, []netip.Addr{
		netip.MustParseAddr("192.0.2.1"),
		netip.MustParseAddr("2001:db8::1"),
		netip.MustParseAddr("192.0.2.7"),
	})
}

func TestRequestUnmarshalBadIP(t *testing.T) {
	req := &ipResolveRequestStruct{}
	err := json.Unmarshal([]byte(`{"ips": ["lalala"]}`), req)

	assert.NotNil(t, err)
}

func TestRequestUnmarshalBadJSON(t *testing.T) {
	req := &ipResolveRequestStruct{}
	err := json.Unmarshal([]byte(`{"ips": [42]}`), req)

	assert.NotNil(t, err)
}
