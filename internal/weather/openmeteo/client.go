// Package openmeteo provides a client for the Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/enviroreport/enviroreport/internal/provider/resilience"
	"github.com/enviroreport/enviroreport/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "open-meteo"

	// DefaultBaseURL is the Open-Meteo forecast API base URL.
	DefaultBaseURL = "https://api.open-meteo.com"

	// currentFields are the current-conditions variables requested from
	// the forecast endpoint.
	currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is an Open-Meteo forecast API client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new Open-Meteo client. The forecast API requires no
// API key.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		clientCfg := resilience.DefaultClientConfig(ProviderName)
		if cfg.Timeout != 0 {
			clientCfg.Timeout = cfg.Timeout
		}
		httpClient = resilience.NewClient(clientCfg)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Open-Meteo forecast API response shape.

type forecastResponse struct {
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Current   *currentValues `json:"current"`
}

type currentValues struct {
	Time             string  `json:"time"`
	Temperature2m    float64 `json:"temperature_2m"`
	RelativeHumidity float64 `json:"relative_humidity_2m"`
	WindSpeed10m     float64 `json:"wind_speed_10m"`
}

// Current fetches current weather conditions for a location.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*weather.Reading, error) {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%.6f&longitude=%.6f&current=%s",
		c.baseURL, lat, lon, currentFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from forecast endpoint", resp.StatusCode)
	}

	var result forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}

	if result.Current == nil {
		return nil, weather.ErrNoDataForLocation
	}

	return c.toReading(&result), nil
}

// toReading converts an Open-Meteo response to the domain model.
func (c *Client) toReading(resp *forecastResponse) *weather.Reading {
	observedAt, _ := time.Parse("2006-01-02T15:04", resp.Current.Time)

	return &weather.Reading{
		Lat:         resp.Latitude,
		Lon:         resp.Longitude,
		Temperature: resp.Current.Temperature2m,
		Humidity:    resp.Current.RelativeHumidity,
		WindSpeed:   resp.Current.WindSpeed10m,
		ObservedAt:  observedAt,
		FetchedAt:   time.Now(),
	}
}
