package openmeteo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviroreport/enviroreport/internal/weather"
	"github.com/enviroreport/enviroreport/internal/weather/openmeteo"
)

func TestClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "temperature_2m,relative_humidity_2m,wind_speed_10m", r.URL.Query().Get("current"))

		response := map[string]interface{}{
			"latitude":  52.37,
			"longitude": 4.89,
			"current": map[string]interface{}{
				"time":                 "2026-08-23T14:00",
				"temperature_2m":       21.4,
				"relative_humidity_2m": 63.0,
				"wind_speed_10m":       12.8,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	reading, err := client.Current(context.Background(), 52.37, 4.89)
	require.NoError(t, err)

	assert.Equal(t, 52.37, reading.Lat)
	assert.Equal(t, 4.89, reading.Lon)
	assert.Equal(t, 21.4, reading.Temperature)
	assert.Equal(t, 63.0, reading.Humidity)
	assert.Equal(t, 12.8, reading.WindSpeed)
	assert.Equal(t, 2026, reading.ObservedAt.Year())
	assert.True(t, reading.Valid())
}

func TestClient_Current_NoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"latitude":  0.0,
			"longitude": 0.0,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	_, err := client.Current(context.Background(), 0, 0)
	assert.ErrorIs(t, err, weather.ErrNoDataForLocation)
}

func TestClient_Current_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	_, err := client.Current(context.Background(), 52.37, 4.89)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}
