package twoiplib

import (
	"math"
	"strings"

	"github.com/pariz/gountries"
)

// DistanceUnit selects the unit DistanceTo reports its result in.
type DistanceUnit string

const (
	DistanceKilometers DistanceUnit = "km"
	DistanceMiles      DistanceUnit = "mi"
)

const (
	earthRadiusKm    = 6371.0
	kilometerInMiles = 0.62137119
)

var countryCodeQuery = gountries.New()

// GeoResult is a single geo lookup record. Localized fields keep the
// wire spelling of the API: the base English value has no suffix, Rus
// and UA are Russian and Ukrainian variants.
type GeoResult struct {
	Result

	CountryCode string   `json:"country_code,omitempty"`
	Country     string   `json:"country,omitempty"`
	CountryRus  string   `json:"country_rus,omitempty"`
	CountryUA   string   `json:"country_ua,omitempty"`
	Region      string   `json:"region,omitempty"`
	RegionRus   string   `json:"region_rus,omitempty"`
	RegionUA    string   `json:"region_ua,omitempty"`
	City        string   `json:"city,omitempty"`
	CityRus     string   `json:"city_rus,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ZipCode     string   `json:"zip_code,omitempty"`
	TimeZone    string   `json:"time_zone,omitempty"`
}

// CountryDetails returns the ISO3166 record matching the result
// country code.
func (g GeoResult) CountryDetails() (gountries.Country, bool) {
	if g.CountryCode == "" {
		return gountries.Country{}, false
	}

	country, ok := countryCodeQuery.Countries[strings.ToUpper(g.CountryCode)]

	return country, ok
}

// DistanceTo computes the great-circle distance between the locations
// of two results using the haversine formula. Both results must carry
// coordinates.
func (g GeoResult) DistanceTo(other GeoResult, unit DistanceUnit) (float64, error) {
	if g.Latitude == nil || g.Longitude == nil || other.Latitude == nil || other.Longitude == nil {
		return 0, ErrNoCoordinates
	}

	phi1 := radians(*g.Latitude)
	phi2 := radians(*other.Latitude)
	lam1 := radians(*g.Longitude)
	lam2 := radians(*other.Longitude)

	h := math.Pow(math.Sin((phi2-phi1)/2), 2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Pow(math.Sin((lam2-lam1)/2), 2)
	distance := 2 * earthRadiusKm * math.Asin(math.Sqrt(h))

	switch unit {
	case DistanceKilometers:
		return distance, nil
	case DistanceMiles:
		return distance * kilometerInMiles, nil
	default:
		return 0, ErrUnknownDistanceUnit
	}
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
