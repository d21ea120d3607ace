// Package openaq provides a client for the OpenAQ v3 API.
package openaq

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
	ProviderName = "openaq"

	// DefaultBaseURL is the OpenAQ API base URL.
	DefaultBaseURL = "https://api.openaq.org"
)

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the OpenAQ client.
type ClientConfig struct {
	// APIKey is the OpenAQ API key (required), sent as X-API-Key.
	APIKey string

	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is an OpenAQ v3 API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new OpenAQ client.
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
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// OpenAQ v3 API response shapes.

type locationsResponse struct {
	Results []locationResult `json:"results"`
}

type locationResult struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Distance    float64         `json:"distance"`
	Coordinates coordinatesData `json:"coordinates"`
	Sensors     []sensorData    `json:"sensors"`
}

type coordinatesData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type sensorData struct {
	ID        int64         `json:"id"`
	Parameter parameterData `json:"parameter"`
}

type parameterData struct {
	Name  string `json:"name"`
	Units string `json:"units"`
}

type latestResponse struct {
	Results []latestResult `json:"results"`
}

type latestResult struct {
	SensorsID int64   `json:"sensorsId"`
	Value     float64 `json:"value"`
}

// NearestReading returns the latest pollutant values from the monitoring
// station nearest to (lat, lon), searching within radiusMeters. Returns
// airquality.ErrNoStationInRange when no station reports a supported
// pollutant inside the radius.
func (c *Client) NearestReading(ctx context.Context, lat, lon float64, radiusMeters int) (*airquality.Reading, error) {
	station, sensors, err := c.nearestStation(ctx, lat, lon, radiusMeters)
	if err != nil {
		return nil, err
	}

	values, err := c.latestValues(ctx, station.ID, sensors)
	if err != nil {
		return nil, err
	}

	if len(values) == 0 {
		// Station exists but reports nothing we understand; treat it
		// like an absent station so the caller can fall back.
		return nil, airquality.ErrNoStationInRange
	}

	return &airquality.Reading{
		Lat:       lat,
		Lon:       lon,
		Values:    values,
		Source:    airquality.SourceMeasured,
		Station:   station,
		FetchedAt: time.Now(),
	}, nil
}

// nearestStation finds the closest station within the radius and returns it
// together with its sensor-to-pollutant mapping.
func (c *Client) nearestStation(ctx context.Context, lat, lon float64, radiusMeters int) (*airquality.Station, map[int64]airquality.Pollutant, error) {
	url := fmt.Sprintf("%s/v3/locations?coordinates=%.6f,%.6f&radius=%d&limit=5",
		c.baseURL, lat, lon, radiusMeters)

	var result locationsResponse
	if err := c.get(ctx, url, &result); err != nil {
		return nil, nil, err
	}

	if len(result.Results) == 0 {
		return nil, nil, airquality.ErrNoStationInRange
	}

	// Results are ordered by distance; take the nearest.
	nearest := result.Results[0]

	sensors := make(map[int64]airquality.Pollutant, len(nearest.Sensors))
	for _, s := range nearest.Sensors {
		if p := toPollutant(s.Parameter.Name); p != "" {
			sensors[s.ID] = p
		}
	}

	station := &airquality.Station{
		ID:             nearest.ID,
		Name:           nearest.Name,
		Lat:            nearest.Coordinates.Latitude,
		Lon:            nearest.Coordinates.Longitude,
		DistanceMeters: nearest.Distance,
	}

	return station, sensors, nil
}

// latestValues fetches the latest value per sensor for a station and maps
// them onto pollutants. Sensors for unsupported parameters are skipped.
func (c *Client) latestValues(ctx context.Context, stationID int64, sensors map[int64]airquality.Pollutant) (map[airquality.Pollutant]float64, error) {
	url := fmt.Sprintf("%s/v3/locations/%d/latest", c.baseURL, stationID)

	var result latestResponse
	if err := c.get(ctx, url, &result); err != nil {
		return nil, err
	}

	values := make(map[airquality.Pollutant]float64)
	for _, r := range result.Results {
		pollutant, ok := sensors[r.SensorsID]
		if !ok {
			continue
		}
		values[pollutant] = r.Value
	}

	return values, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openaq request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from openaq", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode openaq response: %w", err)
	}

	return nil
}

// toPollutant converts an OpenAQ parameter name to our Pollutant type.
func toPollutant(name string) airquality.Pollutant {
	switch strings.ToLower(name) {
	case "pm25":
		return airquality.PollutantPM25
	case "pm10":
		return airquality.PollutantPM10
	case "no2":
		return airquality.PollutantNO2
	case "o3":
		return airquality.PollutantO3
	case "so2":
		return airquality.PollutantSO2
	case "co":
		return airquality.PollutantCO
	default:
		return ""
	}
}
