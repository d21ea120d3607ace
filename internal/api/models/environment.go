package models

// LocationResponse is the payload for GET /v1/location.
type LocationResponse struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WeatherResponse is the payload for GET /v1/weather.
type WeatherResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Temperature in °C.
	Temperature float64 `json:"temperature"`

	// Humidity in percent (0-100).
	Humidity float64 `json:"humidity"`

	// WindSpeed in km/h.
	WindSpeed float64 `json:"windSpeed"`

	ObservedAt *Timestamp `json:"observedAt,omitempty"`
}

// StationResponse describes the monitoring station a measured air quality
// reading came from.
type StationResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	DistanceMeters float64 `json:"distanceMeters"`
}

// AirQualityResponse is the payload for GET /v1/air-quality/{city}.
// Source is always "measured" or "modeled"; Station is only present for
// measured readings.
type AirQualityResponse struct {
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// PollutantValues maps pollutant name to concentration in µg/m³.
	PollutantValues map[string]float64 `json:"pollutantValues"`

	Source  string           `json:"source"`
	Station *StationResponse `json:"station,omitempty"`
}

// EnvironmentSummaryResponse is the payload for GET /v1/environment/{city}.
type EnvironmentSummaryResponse struct {
	City      string  `json:"city"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Weather    WeatherResponse    `json:"weather"`
	AirQuality AirQualityResponse `json:"airQuality"`

	// Report is the human-readable summary line.
	Report string `json:"report"`

	GeneratedAt Timestamp `json:"generatedAt"`
}
