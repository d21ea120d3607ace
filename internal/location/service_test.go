package location_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviroreport/enviroreport/internal/location"
)

type mockProvider struct {
	loc *location.Location
	err error
}

func (m *mockProvider) Locate(_ context.Context) (*location.Location, error) {
	return m.loc, m.err
}

func (m *mockProvider) Name() string { return "mock" }

func TestService_Lookup(t *testing.T) {
	svc := location.NewService(location.ServiceConfig{
		Provider: &mockProvider{
			loc: &location.Location{
				City:      "Utrecht",
				Lat:       52.0907,
				Lon:       5.1214,
				FetchedAt: time.Now(),
			},
		},
		Logger: zerolog.Nop(),
	})

	loc, err := svc.Lookup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Utrecht", loc.City)
	assert.Equal(t, 52.0907, loc.Lat)
	assert.Equal(t, 5.1214, loc.Lon)
}

func TestService_Lookup_ProviderFailure(t *testing.T) {
	// Any provider failure surfaces as a lookup failure, including
	// "no match for this IP".
	cases := []struct {
		name string
		err  error
	}{
		{"network error", errors.New("dial tcp: timeout")},
		{"no match", errors.New("no location for IP")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := location.NewService(location.ServiceConfig{
				Provider: &mockProvider{err: tc.err},
				Logger:   zerolog.Nop(),
			})

			_, err := svc.Lookup(context.Background())
			assert.ErrorIs(t, err, location.ErrLookupFailed)
		})
	}
}
