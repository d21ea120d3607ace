// Package airquality provides pollutant readings for a city, from the
// nearest monitoring station when one is in range and from a model
// otherwise.
package airquality

import (
	"errors"
	"time"
)

// Air quality errors.
var (
	// ErrNoStationInRange means no monitoring station exists within the
	// search radius. Callers inside this package treat it as a signal to
	// fall back to modeled data, not as a failure.
	ErrNoStationInRange = errors.New("no monitoring station in range")

	ErrProviderUnavailable = errors.New("air quality provider unavailable")
)

// Source tells consumers whether a reading came from a real monitoring
// station or was synthesized from a model. Downstream consumers must not
// mistake modeled values for sensor data.
type Source string

const (
	SourceMeasured Source = "measured"
	SourceModeled  Source = "modeled"
)

// Pollutant represents an air quality pollutant type.
type Pollutant string

const (
	PollutantPM25 Pollutant = "PM25"
	PollutantPM10 Pollutant = "PM10"
	PollutantNO2  Pollutant = "NO2"
	PollutantO3   Pollutant = "O3"
	PollutantSO2  Pollutant = "SO2"
	PollutantCO   Pollutant = "CO"
)

// Pollutants lists all supported pollutants in display order.
func Pollutants() []Pollutant {
	return []Pollutant{
		PollutantPM25,
		PollutantPM10,
		PollutantNO2,
		PollutantO3,
		PollutantSO2,
		PollutantCO,
	}
}

// Station represents the monitoring station a measured reading came from.
type Station struct {
	ID             int64
	Name           string
	Lat            float64
	Lon            float64
	DistanceMeters float64
}

// Reading holds pollutant concentrations for a city. It lives for one
// request; nothing is cached or stored.
type Reading struct {
	// City is the requested city name.
	City string

	// Lat and Lon are the coordinates the reading applies to.
	Lat float64
	Lon float64

	// Values maps pollutant to concentration in µg/m³.
	Values map[Pollutant]float64

	// Source is measured or modeled, never empty.
	Source Source

	// Station is set for measured readings, nil for modeled ones.
	Station *Station

	// FetchedAt is when the reading was retrieved.
	FetchedAt time.Time
}
