// Package ipapi provides a client for the ipapi.co IP geolocation API.
package ipapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/enviroreport/enviroreport/internal/location"
	"github.com/enviroreport/enviroreport/internal/provider/resilience"
)

const (
	// ProviderName identifies this geolocation provider.
	ProviderName = "ipapi"

	// DefaultBaseURL is the ipapi.co base URL.
	DefaultBaseURL = "https://ipapi.co"
)

// ErrNoMatch is returned when ipapi.co has no location for the caller's IP.
var ErrNoMatch = errors.New("no location for IP")

// HTTPDoer abstracts HTTP request execution.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds configuration for the ipapi client.
type ClientConfig struct {
	// BaseURL is the API base URL (defaults to DefaultBaseURL).
	BaseURL string

	// HTTPClient is the HTTP client to use.
	// If nil, a default resilient client will be created.
	HTTPClient HTTPDoer

	// Timeout for individual API requests (default: 10s).
	Timeout time.Duration
}

// Client is an ipapi.co API client.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// NewClient creates a new ipapi client.
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

// ipapi.co response shape. The API reports reserved/unroutable addresses
// with error=true instead of a non-200 status.
type geolocationResponse struct {
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Error     bool    `json:"error"`
	Reason    string  `json:"reason"`
}

// Locate resolves the caller's approximate location from its IP.
func (c *Client) Locate(ctx context.Context) (*location.Location, error) {
	url := c.baseURL + "/json/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from geolocation endpoint", resp.StatusCode)
	}

	var result geolocationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode geolocation response: %w", err)
	}

	if result.Error {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, result.Reason)
	}
	if result.City == "" {
		return nil, ErrNoMatch
	}

	return &location.Location{
		City:      result.City,
		Lat:       result.Latitude,
		Lon:       result.Longitude,
		FetchedAt: time.Now(),
	}, nil
}
