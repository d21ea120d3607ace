package openmeteo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviroreport/enviroreport/internal/geocode"
	"github.com/enviroreport/enviroreport/internal/geocode/openmeteo"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "Reykjavik", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))

		response := map[string]interface{}{
			"results": []map[string]interface{}{
				{
					"name":      "Reykjavík",
					"country":   "Iceland",
					"latitude":  64.13548,
					"longitude": -21.89541,
				},
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

	place, err := client.Search(context.Background(), "Reykjavik")
	require.NoError(t, err)

	assert.Equal(t, "Reykjavík", place.Name)
	assert.Equal(t, "Iceland", place.Country)
	assert.Equal(t, 64.13548, place.Lat)
	assert.Equal(t, -21.89541, place.Lon)
}

func TestClient_Search_UnknownCity(t *testing.T) {
	// The geocoder omits the results key entirely when nothing matches.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"generationtime_ms": 0.5})
	}))
	defer server.Close()

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	_, err := client.Search(context.Background(), "Xyzzyville")
	assert.ErrorIs(t, err, geocode.ErrCityNotFound)
}

func TestClient_Search_EscapesCityName(t *testing.T) {
	var gotName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotName = r.URL.Query().Get("name")

		response := map[string]interface{}{
			"results": []map[string]interface{}{
				{"name": "Den Haag", "country": "Netherlands", "latitude": 52.08, "longitude": 4.3},
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

	_, err := client.Search(context.Background(), "Den Haag")
	require.NoError(t, err)
	assert.Equal(t, "Den Haag", gotName)
}

func TestClient_Search_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:    server.URL,
		HTTPClient: http.DefaultClient,
	})

	_, err := client.Search(context.Background(), "Amsterdam")
	require.Error(t, err)
	assert.NotErrorIs(t, err, geocode.ErrCityNotFound)
}
