package twoiplib

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
)

// Error messages stored in Result.Err for protocol level failures.
const (
	parseErrNoBody      = "No response body in API response"
	parseErrNoStatus    = "No HTTP response code"
	parseErrRateLimit   = "Rate limit exceeded"
	parseErrBadStatus   = "Unexpected HTTP response code"
	parseErrContentType = "Unexpected content type in API response"
	parseErrBadJSON     = "Could not parse API response as JSON"
)

var (
	geoSentinels      = []string{"-", "Неизвестно", "Невідомо"}
	providerSentinels = []string{"-"}
)

// looseString tolerates upstream type drift: the API is known to send
// numbers where strings are documented and vice versa.
type looseString string

func (l *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = ""

		return nil
	}

	if data[0] == '"' {
		var value string

		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}

		*l = looseString(value)

		return nil
	}

	*l = looseString(data)

	return nil
}

type geoWire struct {
	CountryCode looseString `json:"country_code"`
	Country     looseString `json:"country"`
	CountryRus  looseString `json:"country_rus"`
	CountryUA   looseString `json:"country_ua"`
	Region      looseString `json:"region"`
	RegionRus   looseString `json:"region_rus"`
	RegionUA    looseString `json:"region_ua"`
	City        looseString `json:"city"`
	CityRus     looseString `json:"city_rus"`
	Latitude    looseString `json:"latitude"`
	Longitude   looseString `json:"longitude"`
	ZipCode     looseString `json:"zip_code"`
	TimeZone    looseString `json:"time_zone"`
}

type providerWire struct {
	NameRipe     looseString `json:"name_ripe"`
	NameRus      looseString `json:"name_rus"`
	Site         looseString `json:"site"`
	AS           looseString `json:"as"`
	IPRangeStart looseString `json:"ip_range_start"`
	IPRangeEnd   looseString `json:"ip_range_end"`
	Route        looseString `json:"route"`
	Mask         looseString `json:"mask"`
}

// parseEnvelope applies the protocol checks shared by both lookup
// kinds. It returns the partially filled base record and whether the
// body is worth decoding. Checks are ordered, the first failed one
// wins.
func parseEnvelope(outcome rawOutcome) (Result, bool) {
	rv := Result{IP: outcome.addr}

	switch {
	case outcome.err != nil:
		rv.Err = outcome.err.Error()
	case len(outcome.body) == 0:
		rv.Err = parseErrNoBody
	case outcome.statusCode == 0:
		rv.Err = parseErrNoStatus
		rv.RawResponse = string(outcome.body)
	case outcome.statusCode == http.StatusTooManyRequests:
		rv.Err = parseErrRateLimit
		rv.HTTPCode = outcome.statusCode
		rv.RawResponse = string(outcome.body)
	case outcome.statusCode != http.StatusOK:
		rv.Err = parseErrBadStatus
		rv.HTTPCode = outcome.statusCode
		rv.RawResponse = string(outcome.body)
	case !strings.Contains(strings.ToLower(outcome.contentType), "application/json"):
		rv.Err = parseErrContentType
		rv.HTTPCode = outcome.statusCode
		rv.RawResponse = string(outcome.body)
	default:
		rv.HTTPCode = outcome.statusCode
		rv.RawResponse = string(outcome.body)

		return rv, true
	}

	return rv, false
}

func parseGeo(outcome rawOutcome) GeoResult {
	base, ok := parseEnvelope(outcome)
	rv := GeoResult{Result: base}

	if !ok {
		return rv
	}

	wire := geoWire{}

	if err := json.Unmarshal(outcome.body, &wire); err != nil {
		rv.Err = parseErrBadJSON

		return rv
	}

	rv.CountryCode = suppress(wire.CountryCode, geoSentinels)
	rv.Country = suppress(wire.Country, geoSentinels)
	rv.CountryRus = suppress(wire.CountryRus, geoSentinels)
	rv.CountryUA = suppress(wire.CountryUA, geoSentinels)
	rv.Region = suppress(wire.Region, geoSentinels)
	rv.RegionRus = suppress(wire.RegionRus, geoSentinels)
	rv.RegionUA = suppress(wire.RegionUA, geoSentinels)
	rv.City = suppress(wire.City, geoSentinels)
	rv.CityRus = suppress(wire.CityRus, geoSentinels)
	rv.ZipCode = suppress(wire.ZipCode, geoSentinels)
	rv.TimeZone = suppress(wire.TimeZone, geoSentinels)
	rv.Latitude = looseFloatPtr(suppress(wire.Latitude, geoSentinels))
	rv.Longitude = looseFloatPtr(suppress(wire.Longitude, geoSentinels))

	return rv
}

func parseProvider(outcome rawOutcome) ProviderResult {
	base, ok := parseEnvelope(outcome)
	rv := ProviderResult{Result: base}

	if !ok {
		return rv
	}

	wire := providerWire{}

	if err := json.Unmarshal(outcome.body, &wire); err != nil {
		rv.Err = parseErrBadJSON

		return rv
	}

	rv.Name = suppress(wire.NameRipe, providerSentinels)
	rv.NameRus = suppress(wire.NameRus, providerSentinels)
	rv.Website = suppress(wire.Site, providerSentinels)
	rv.RangeStart = decodeRangeAddr(suppress(wire.IPRangeStart, providerSentinels))
	rv.RangeEnd = decodeRangeAddr(suppress(wire.IPRangeEnd, providerSentinels))

	if value := suppress(wire.AS, providerSentinels); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			rv.AutonomousSystem = parsed
		}
	}

	if route := suppress(wire.Route, providerSentinels); route != "" {
		if parsed, err := netip.ParseAddr(route); err == nil {
			rv.Route = parsed
		}
	}

	if mask := suppress(wire.Mask, providerSentinels); mask != "" {
		if bits, err := strconv.Atoi(mask); err == nil {
			rv.Mask = bits

			if rv.Route.IsValid() {
				if prefix, err := rv.Route.Prefix(bits); err == nil {
					rv.Prefix = prefix
				}
			}
		}
	}

	return rv
}

func suppress(value looseString, sentinels []string) string {
	str := string(value)

	for _, v := range sentinels {
		if str == v {
			return ""
		}
	}

	return str
}

func looseFloatPtr(value string) *float64 {
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}

	return &parsed
}

// decodeRangeAddr handles the integer encoded IPv4 addresses the
// provider endpoint uses for range boundaries. Plain address strings
// are accepted too.
func decodeRangeAddr(value string) netip.Addr {
	if value == "" {
		return netip.Addr{}
	}

	if parsed, err := strconv.ParseUint(value, 10, 32); err == nil {
		var octets [4]byte

		binary.BigEndian.PutUint32(octets[:], uint32(parsed))

		return netip.AddrFrom4(octets)
	}

	if parsed, err := netip.ParseAddr(value); err == nil {
		return parsed
	}

	return netip.Addr{}
}
