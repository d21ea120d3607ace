package weather

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Provider defines the interface for weather data providers.
type Provider interface {
	// Current fetches current weather conditions for a location.
	Current(ctx context.Context, lat, lon float64) (*Reading, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the weather data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service provides current weather conditions. Every call goes straight to
// the provider: results are not cached and failures are not retried.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Current returns current weather for a location.
func (s *Service) Current(ctx context.Context, lat, lon float64) (*Reading, error) {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Float64("lat", lat).
		Float64("lon", lon).
		Str("provider", s.provider.Name()).
		Msg("fetching weather from provider")

	reading, err := s.provider.Current(ctx, lat, lon)
	if err != nil {
		if errors.Is(err, ErrNoDataForLocation) {
			return nil, ErrNoDataForLocation
		}

		s.logger.Error().Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Msg("failed to fetch weather")
		return nil, ErrProviderUnavailable
	}

	return reading, nil
}
