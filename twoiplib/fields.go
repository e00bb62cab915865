package twoiplib

import (
	"fmt"
	"net/netip"
	"strconv"

	"github.com/xrash/smetrics"
)

// AddressField is the name of the column forced first in table and CSV
// output.
const AddressField = "ip"

const suggestionFloor = 0.75

type fieldDef struct {
	name  string
	title string
}

var geoFieldDefs = []fieldDef{
	{name: "ip", title: "IP Address"},
	{name: "success", title: "Success"},
	{name: "http_code", title: "HTTP Code"},
	{name: "error", title: "Error"},
	{name: "country_code", title: "Country Code"},
	{name: "country", title: "Country"},
	{name: "country_rus", title: "Country (RU)"},
	{name: "country_ua", title: "Country (UA)"},
	{name: "region", title: "Region"},
	{name: "region_rus", title: "Region (RU)"},
	{name: "region_ua", title: "Region (UA)"},
	{name: "city", title: "City"},
	{name: "city_rus", title: "City (RU)"},
	{name: "latitude", title: "Latitude"},
	{name: "longitude", title: "Longitude"},
	{name: "zip_code", title: "ZIP Code"},
	{name: "time_zone", title: "Time Zone"},
}

var providerFieldDefs = []fieldDef{
	{name: "ip", title: "IP Address"},
	{name: "success", title: "Success"},
	{name: "http_code", title: "HTTP Code"},
	{name: "error", title: "Error"},
	{name: "name", title: "Provider Name"},
	{name: "name_rus", title: "Provider Name (RU)"},
	{name: "website", title: "Website"},
	{name: "autonomous_system", title: "AS Number"},
	{name: "route", title: "Route"},
	{name: "mask", title: "Mask"},
	{name: "prefix", title: "Prefix"},
	{name: "range_start", title: "Range Start"},
	{name: "range_end", title: "Range End"},
}

var (
	geoDefaultFields      = []string{AddressField, "success", "city", "country"}
	providerDefaultFields = []string{AddressField, "success", "autonomous_system", "name", "website"}
)

// resolveFields maps requested column names to their definitions. The
// address column always goes first no matter what was requested. An
// unknown name is a caller error reported immediately.
func resolveFields(requested []string, defs []fieldDef, defaults []string) ([]fieldDef, error) {
	if len(requested) == 0 {
		requested = defaults
	}

	addressDef, _ := lookupFieldDef(AddressField, defs)
	rv := make([]fieldDef, 0, len(requested)+1)
	rv = append(rv, addressDef)

	for _, name := range requested {
		if name == AddressField {
			continue
		}

		def, ok := lookupFieldDef(name, defs)
		if !ok {
			return nil, &UnknownFieldError{
				Field:      name,
				Suggestion: closestFieldName(name, defs),
			}
		}

		rv = append(rv, def)
	}

	return rv, nil
}

// resolveSortColumn translates a sort key, either a column name or a
// 0-based index, into a position within the rendered columns. An empty
// key disables sorting.
func resolveSortColumn(sortBy string, fields []fieldDef) (int, error) {
	if sortBy == "" {
		return -1, nil
	}

	if index, err := strconv.Atoi(sortBy); err == nil {
		if index < 0 || index >= len(fields) {
			return 0, fmt.Errorf("sort index %d is out of range", index)
		}

		return index, nil
	}

	for i, v := range fields {
		if v.name == sortBy {
			return i, nil
		}
	}

	return 0, &UnknownFieldError{
		Field:      sortBy,
		Suggestion: closestFieldName(sortBy, fields),
	}
}

func lookupFieldDef(name string, defs []fieldDef) (fieldDef, bool) {
	for _, v := range defs {
		if v.name == name {
			return v, true
		}
	}

	return fieldDef{}, false
}

func closestFieldName(name string, defs []fieldDef) string {
	bestScore := suggestionFloor
	bestName := ""

	for _, v := range defs {
		score := smetrics.JaroWinkler(name, v.name, 0.7, 4)
		if score > bestScore {
			bestScore = score
			bestName = v.name
		}
	}

	return bestName
}

func (g GeoResult) fieldValue(name string) string {
	switch name {
	case "ip":
		return addrString(g.IP)
	case "success":
		return yesNo(g.Success())
	case "http_code":
		return httpCodeString(g.HTTPCode)
	case "error":
		return g.Err
	case "country_code":
		return g.CountryCode
	case "country":
		return g.Country
	case "country_rus":
		return g.CountryRus
	case "country_ua":
		return g.CountryUA
	case "region":
		return g.Region
	case "region_rus":
		return g.RegionRus
	case "region_ua":
		return g.RegionUA
	case "city":
		return g.City
	case "city_rus":
		return g.CityRus
	case "latitude":
		return floatString(g.Latitude)
	case "longitude":
		return floatString(g.Longitude)
	case "zip_code":
		return g.ZipCode
	case "time_zone":
		return g.TimeZone
	default:
		return ""
	}
}

func (p ProviderResult) fieldValue(name string) string {
	switch name {
	case "ip":
		return addrString(p.IP)
	case "success":
		return yesNo(p.Success())
	case "http_code":
		return httpCodeString(p.HTTPCode)
	case "error":
		return p.Err
	case "name":
		return p.Name
	case "name_rus":
		return p.NameRus
	case "website":
		return p.Website
	case "autonomous_system":
		return intString(p.AutonomousSystem)
	case "route":
		return addrString(p.Route)
	case "mask":
		return intString(int64(p.Mask))
	case "prefix":
		return prefixString(p.Prefix)
	case "range_start":
		return addrString(p.RangeStart)
	case "range_end":
		return addrString(p.RangeEnd)
	default:
		return ""
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

func httpCodeString(code int) string {
	if code == 0 {
		return ""
	}

	return strconv.Itoa(code)
}

func intString(value int64) string {
	if value == 0 {
		return ""
	}

	return strconv.FormatInt(value, 10)
}

func floatString(value *float64) string {
	if value == nil {
		return ""
	}

	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func addrString(addr netip.Addr) string {
	if !addr.IsValid() {
		return ""
	}

	return addr.String()
}

func prefixString(prefix netip.Prefix) string {
	if !prefix.IsValid() {
		return ""
	}

	return prefix.String()
}
