package weather_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviroreport/enviroreport/internal/weather"
)

type mockProvider struct {
	reading *weather.Reading
	err     error
}

func (m *mockProvider) Current(_ context.Context, lat, lon float64) (*weather.Reading, error) {
	if m.err != nil {
		return nil, m.err
	}
	r := *m.reading
	r.Lat = lat
	r.Lon = lon
	return &r, nil
}

func (m *mockProvider) Name() string { return "mock" }

func newService(p weather.Provider) *weather.Service {
	return weather.NewService(weather.ServiceConfig{
		Provider: p,
		Logger:   zerolog.Nop(),
	})
}

func TestService_Current(t *testing.T) {
	svc := newService(&mockProvider{
		reading: &weather.Reading{
			Temperature: 18.2,
			Humidity:    71,
			WindSpeed:   9.4,
			ObservedAt:  time.Now(),
		},
	})

	reading, err := svc.Current(context.Background(), 52.37, 4.89)
	require.NoError(t, err)

	assert.Equal(t, 18.2, reading.Temperature)
	assert.Equal(t, 52.37, reading.Lat)
	assert.True(t, reading.Valid())
}

func TestService_Current_InvalidCoordinates(t *testing.T) {
	svc := newService(&mockProvider{reading: &weather.Reading{}})

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"lat too high", 91, 0},
		{"lat too low", -91, 0},
		{"lon too high", 0, 181},
		{"lon too low", 0, -181},
		{"lat NaN", math.NaN(), 0},
		{"lon NaN", 0, math.NaN()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Current(context.Background(), tc.lat, tc.lon)
			assert.ErrorIs(t, err, weather.ErrInvalidCoordinates)
		})
	}
}

func TestService_Current_NoDataPassesThrough(t *testing.T) {
	svc := newService(&mockProvider{err: weather.ErrNoDataForLocation})

	_, err := svc.Current(context.Background(), 52.37, 4.89)
	assert.ErrorIs(t, err, weather.ErrNoDataForLocation)
}

func TestService_Current_ProviderFailure(t *testing.T) {
	svc := newService(&mockProvider{err: errors.New("connection refused")})

	_, err := svc.Current(context.Background(), 52.37, 4.89)
	assert.ErrorIs(t, err, weather.ErrProviderUnavailable)
}

func TestReading_Valid(t *testing.T) {
	cases := []struct {
		name    string
		reading weather.Reading
		want    bool
	}{
		{"normal", weather.Reading{Temperature: 20, Humidity: 50}, true},
		{"humidity floor", weather.Reading{Temperature: -30, Humidity: 0}, true},
		{"humidity ceiling", weather.Reading{Temperature: 45, Humidity: 100}, true},
		{"humidity negative", weather.Reading{Temperature: 20, Humidity: -1}, false},
		{"humidity above 100", weather.Reading{Temperature: 20, Humidity: 101}, false},
		{"temperature NaN", weather.Reading{Temperature: math.NaN(), Humidity: 50}, false},
		{"temperature Inf", weather.Reading{Temperature: math.Inf(1), Humidity: 50}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.reading.Valid())
		})
	}
}
