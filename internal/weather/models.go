// Package weather provides current weather conditions for a coordinate.
package weather

import (
	"errors"
	"math"
	"time"
)

// Weather errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrNoDataForLocation   = errors.New("no weather data for location")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
)

// Reading represents current weather conditions at a specific point.
// Readings live for one request; nothing is cached or stored.
type Reading struct {
	// Location coordinates
	Lat float64
	Lon float64

	// Temperature in Celsius
	Temperature float64

	// Humidity percentage (0-100)
	Humidity float64

	// WindSpeed in km/h
	WindSpeed float64

	// Timestamps
	ObservedAt time.Time
	FetchedAt  time.Time
}

// Valid reports whether the reading holds plausible values: a finite
// temperature and humidity within [0, 100].
func (r *Reading) Valid() bool {
	if math.IsNaN(r.Temperature) || math.IsInf(r.Temperature, 0) {
		return false
	}
	return r.Humidity >= 0 && r.Humidity <= 100
}

// ValidateCoordinates checks that lat/lon form a valid WGS84 pair.
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return ErrInvalidCoordinates
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}
