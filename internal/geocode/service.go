package geocode

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// Provider defines the interface for geocoding providers.
type Provider interface {
	// Search resolves a city name to a place.
	// Returns ErrCityNotFound if the provider has no match.
	Search(ctx context.Context, city string) (*Place, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the geocoding service.
type ServiceConfig struct {
	// Provider is the geocoding provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service resolves city names to coordinates through a geocoding provider.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new geocoding service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Resolve resolves a city name to coordinates.
func (s *Service) Resolve(ctx context.Context, city string) (*Place, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	place, err := s.provider.Search(ctx, city)
	if err != nil {
		if errors.Is(err, ErrCityNotFound) {
			s.logger.Debug().
				Str("city", city).
				Str("provider", s.provider.Name()).
				Msg("city not found")
			return nil, ErrCityNotFound
		}

		s.logger.Error().Err(err).
			Str("city", city).
			Str("provider", s.provider.Name()).
			Msg("geocoding failed")
		return nil, ErrProviderUnavailable
	}

	return place, nil
}
