// Package summary composes weather and air quality data for a city into a
// single environment report.
package summary

import (
	"time"

	"github.com/enviroreport/enviroreport/internal/airquality"
	"github.com/enviroreport/enviroreport/internal/weather"
)

// Summary is the composed environment report for a city. It is a
// presentation artifact built per request, never stored.
type Summary struct {
	// City is the canonical city name from the geocoder.
	City    string
	Country string

	// Lat and Lon are the resolved coordinates the report applies to.
	Lat float64
	Lon float64

	// Weather holds the current conditions sub-result.
	Weather *weather.Reading

	// AirQuality holds the pollutant sub-result, measured or modeled.
	AirQuality *airquality.Reading

	// Report is the human-readable rendering of the two sub-results.
	Report string

	// GeneratedAt is when the summary was assembled.
	GeneratedAt time.Time
}
