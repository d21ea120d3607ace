package airquality_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviroreport/enviroreport/internal/airquality"
	"github.com/enviroreport/enviroreport/internal/geocode"
)

type mockGeocoder struct {
	place *geocode.Place
	err   error
}

func (m *mockGeocoder) Resolve(_ context.Context, _ string) (*geocode.Place, error) {
	return m.place, m.err
}

type mockStations struct {
	reading   *airquality.Reading
	err       error
	gotRadius int
}

func (m *mockStations) NearestReading(_ context.Context, _, _ float64, radiusMeters int) (*airquality.Reading, error) {
	m.gotRadius = radiusMeters
	if m.err != nil {
		return nil, m.err
	}
	r := *m.reading
	return &r, nil
}

func (m *mockStations) Name() string { return "mock-stations" }

type mockModel struct {
	reading *airquality.Reading
	err     error
	called  bool
}

func (m *mockModel) ModeledReading(_ context.Context, _, _ float64) (*airquality.Reading, error) {
	m.called = true
	if m.err != nil {
		return nil, m.err
	}
	r := *m.reading
	return &r, nil
}

func (m *mockModel) Name() string { return "mock-model" }

func measuredReading() *airquality.Reading {
	return &airquality.Reading{
		Values: map[airquality.Pollutant]float64{
			airquality.PollutantPM25: 12.3,
			airquality.PollutantPM10: 20.1,
		},
		Source: airquality.SourceMeasured,
		Station: &airquality.Station{
			ID:             2178,
			Name:           "Amsterdam-Vondelpark",
			DistanceMeters: 1843.2,
		},
		FetchedAt: time.Now(),
	}
}

func modeledReading() *airquality.Reading {
	return &airquality.Reading{
		Values: map[airquality.Pollutant]float64{
			airquality.PollutantPM25: 3.4,
			airquality.PollutantO3:   58.0,
		},
		Source:    airquality.SourceModeled,
		FetchedAt: time.Now(),
	}
}

func TestService_ByCity_Measured(t *testing.T) {
	stations := &mockStations{reading: measuredReading()}
	model := &mockModel{}

	svc := airquality.NewService(airquality.ServiceConfig{
		Geocoder: &mockGeocoder{place: &geocode.Place{Name: "Amsterdam", Lat: 52.374, Lon: 4.8897}},
		Stations: stations,
		Model:    model,
		Logger:   zerolog.Nop(),
	})

	reading, err := svc.ByCity(context.Background(), "Amsterdam")
	require.NoError(t, err)

	assert.Equal(t, "Amsterdam", reading.City)
	assert.Equal(t, airquality.SourceMeasured, reading.Source)
	require.NotNil(t, reading.Station)
	assert.Equal(t, "Amsterdam-Vondelpark", reading.Station.Name)
	assert.Equal(t, airquality.DefaultSearchRadiusMeters, stations.gotRadius)
	assert.False(t, model.called, "model must not be consulted when a station is in range")
}

func TestService_ByCity_ModeledFallback(t *testing.T) {
	// Reykjavik-style case: no station within the radius, so the reading
	// degrades to modeled data instead of failing.
	model := &mockModel{reading: modeledReading()}

	svc := airquality.NewService(airquality.ServiceConfig{
		Geocoder: &mockGeocoder{place: &geocode.Place{Name: "Reykjavík", Lat: 64.135, Lon: -21.895}},
		Stations: &mockStations{err: airquality.ErrNoStationInRange},
		Model:    model,
		Logger:   zerolog.Nop(),
	})

	reading, err := svc.ByCity(context.Background(), "Reykjavik")
	require.NoError(t, err)

	assert.True(t, model.called)
	assert.Equal(t, "Reykjavík", reading.City)
	assert.Equal(t, airquality.SourceModeled, reading.Source)
	assert.Nil(t, reading.Station)
}

func TestService_ByCity_SourceAlwaysSet(t *testing.T) {
	cases := []struct {
		name     string
		stations *mockStations
		want     airquality.Source
	}{
		{"measured", &mockStations{reading: measuredReading()}, airquality.SourceMeasured},
		{"modeled", &mockStations{err: airquality.ErrNoStationInRange}, airquality.SourceModeled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := airquality.NewService(airquality.ServiceConfig{
				Geocoder: &mockGeocoder{place: &geocode.Place{Name: "City", Lat: 1, Lon: 1}},
				Stations: tc.stations,
				Model:    &mockModel{reading: modeledReading()},
				Logger:   zerolog.Nop(),
			})

			reading, err := svc.ByCity(context.Background(), "City")
			require.NoError(t, err)
			assert.Equal(t, tc.want, reading.Source)
		})
	}
}

func TestService_ByCity_GeocodeErrorsPassThrough(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", geocode.ErrCityNotFound},
		{"empty city", geocode.ErrEmptyCity},
		{"geocoder down", geocode.ErrProviderUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := airquality.NewService(airquality.ServiceConfig{
				Geocoder: &mockGeocoder{err: tc.err},
				Stations: &mockStations{reading: measuredReading()},
				Model:    &mockModel{},
				Logger:   zerolog.Nop(),
			})

			_, err := svc.ByCity(context.Background(), "anything")
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestService_ByCoordinates_StationHardFailure(t *testing.T) {
	// A station provider that is unreachable outright is a failure; only
	// "no station in range" triggers the modeled fallback.
	model := &mockModel{reading: modeledReading()}

	svc := airquality.NewService(airquality.ServiceConfig{
		Geocoder: &mockGeocoder{},
		Stations: &mockStations{err: errors.New("connection refused")},
		Model:    model,
		Logger:   zerolog.Nop(),
	})

	_, err := svc.ByCoordinates(context.Background(), "Amsterdam", 52.374, 4.8897)
	assert.ErrorIs(t, err, airquality.ErrProviderUnavailable)
	assert.False(t, model.called)
}

func TestService_ByCoordinates_ModelFailure(t *testing.T) {
	svc := airquality.NewService(airquality.ServiceConfig{
		Geocoder: &mockGeocoder{},
		Stations: &mockStations{err: airquality.ErrNoStationInRange},
		Model:    &mockModel{err: errors.New("connection refused")},
		Logger:   zerolog.Nop(),
	})

	_, err := svc.ByCoordinates(context.Background(), "Reykjavik", 64.135, -21.895)
	assert.ErrorIs(t, err, airquality.ErrProviderUnavailable)
}

func TestService_CustomSearchRadius(t *testing.T) {
	stations := &mockStations{reading: measuredReading()}

	svc := airquality.NewService(airquality.ServiceConfig{
		Geocoder:           &mockGeocoder{},
		Stations:           stations,
		Model:              &mockModel{},
		Logger:             zerolog.Nop(),
		SearchRadiusMeters: 5000,
	})

	_, err := svc.ByCoordinates(context.Background(), "Amsterdam", 52.374, 4.8897)
	require.NoError(t, err)
	assert.Equal(t, 5000, stations.gotRadius)
}
