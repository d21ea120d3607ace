// Package geocode resolves city names to WGS84 coordinates.
package geocode

import "errors"

// Geocoding errors.
var (
	ErrEmptyCity           = errors.New("city name is empty")
	ErrCityNotFound        = errors.New("city not found")
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
)

// Place is a resolved city.
type Place struct {
	// Name is the canonical city name returned by the geocoder, which may
	// differ from the requested spelling.
	Name string

	// Country is the country the place belongs to.
	Country string

	// Lat and Lon are WGS84 coordinates of the city centre.
	Lat float64
	Lon float64
}
