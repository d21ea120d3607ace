// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server holds HTTP server configuration.
type Server struct {
	Port         string        `envconfig:"APP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"APP_IDLE_TIMEOUT" default:"60s"`
}

// Telemetry holds OpenTelemetry configuration.
type Telemetry struct {
	Enabled      bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
}

// Providers holds upstream provider configuration. Base URLs are
// overridable so tests and local setups can point at fakes.
type Providers struct {
	Timeout time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"10s"`

	IPAPIBaseURL     string `envconfig:"IPAPI_BASE_URL" default:"https://ipapi.co"`
	GeocodingBaseURL string `envconfig:"GEOCODING_BASE_URL" default:"https://geocoding-api.open-meteo.com"`
	WeatherBaseURL   string `envconfig:"WEATHER_BASE_URL" default:"https://api.open-meteo.com"`
	OpenAQBaseURL    string `envconfig:"OPENAQ_BASE_URL" default:"https://api.openaq.org"`
	OpenAQAPIKey     string `envconfig:"OPENAQ_API_KEY"`
	AQModelBaseURL   string `envconfig:"AQ_MODEL_BASE_URL" default:"https://air-quality-api.open-meteo.com"`

	// AQSearchRadiusMeters is how far from the resolved city centre to
	// look for an air quality monitoring station before falling back to
	// modeled data.
	AQSearchRadiusMeters int `envconfig:"AQ_SEARCH_RADIUS_METERS" default:"25000"`
}

// Config is the full service configuration.
type Config struct {
	Env string `envconfig:"APP_ENV" default:"development"`

	Server    Server
	Telemetry Telemetry
	Providers Providers
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
