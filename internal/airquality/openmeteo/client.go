// Package openmeteo provides the modeled air quality fallback, backed by
// the Open-Meteo air quality API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/enviroreport/enviroreport/internal/airquality"
	"github.com/enviroreport/enviroreport/internal/provider/resilience"
)

const (
	// ProviderName identifies this air quality provider.
	ProviderName = "open-meteo-air-quality"

	// DefaultBaseURL is the Open-Meteo air quality API base URL.
	DefaultBaseURL = "https://air-quality-api.open-meteo.com"

	// hourlyFields are the pollutant series requested from the model.
	hourlyFields = "pm2_5,pm10,carbon_monoxide,ozone,nitrogen_dioxide,sulphur_dioxide"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the air quality model client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is an Open-Meteo air quality API client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new air quality model client.
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

// Open-Meteo air quality API response shape. Each series is hourly; the
// last element is the most recent modeled value.

type airQualityResponse struct {
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Hourly    hourlySeries `json:"hourly"`
}

type hourlySeries struct {
	Time            []string  `json:"time"`
	PM25            []float64 `json:"pm2_5"`
	PM10            []float64 `json:"pm10"`
	CarbonMonoxide  []float64 `json:"carbon_monoxide"`
	Ozone           []float64 `json:"ozone"`
	NitrogenDioxide []float64 `json:"nitrogen_dioxide"`
	SulphurDioxide  []float64 `json:"sulphur_dioxide"`
}

// ModeledReading returns the latest modeled pollutant values for a
// coordinate, tagged SourceModeled so callers can tell them apart from
// sensor data.
func (c *Client) ModeledReading(ctx context.Context, lat, lon float64) (*airquality.Reading, error) {
	url := fmt.Sprintf("%s/v1/air-quality?latitude=%.6f&longitude=%.6f&hourly=%s",
		c.baseURL, lat, lon, hourlyFields)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("air quality model request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from air quality model", resp.StatusCode)
	}

	var result airQualityResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode air quality model response: %w", err)
	}

	values := latestValues(&result.Hourly)
	if len(values) == 0 {
		return nil, fmt.Errorf("no modeled data for %.4f,%.4f", lat, lon)
	}

	return &airquality.Reading{
		Lat:       result.Latitude,
		Lon:       result.Longitude,
		Values:    values,
		Source:    airquality.SourceModeled,
		FetchedAt: time.Now(),
	}, nil
}

// latestValues takes the most recent sample from each pollutant series.
func latestValues(h *hourlySeries) map[airquality.Pollutant]float64 {
	values := make(map[airquality.Pollutant]float64)

	series := []struct {
		pollutant airquality.Pollutant
		data      []float64
	}{
		{airquality.PollutantPM25, h.PM25},
		{airquality.PollutantPM10, h.PM10},
		{airquality.PollutantCO, h.CarbonMonoxide},
		{airquality.PollutantO3, h.Ozone},
		{airquality.PollutantNO2, h.NitrogenDioxide},
		{airquality.PollutantSO2, h.SulphurDioxide},
	}

	for _, s := range series {
		if len(s.data) > 0 {
			values[s.pollutant] = s.data[len(s.data)-1]
		}
	}

	return values
}
