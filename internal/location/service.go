package location

import (
	"context"

	"github.com/rs/zerolog"
)

// Provider defines the interface for IP geolocation providers.
type Provider interface {
	// Locate resolves the caller's approximate location.
	Locate(ctx context.Context) (*Location, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the location service.
type ServiceConfig struct {
	// Provider is the IP geolocation provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service resolves the caller's location through a geolocation provider.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new location service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Lookup resolves the caller's approximate location. Any provider failure,
// including "no match for this IP", surfaces as ErrLookupFailed.
func (s *Service) Lookup(ctx context.Context) (*Location, error) {
	loc, err := s.provider.Locate(ctx)
	if err != nil {
		s.logger.Error().Err(err).
			Str("provider", s.provider.Name()).
			Msg("failed to resolve location")
		return nil, ErrLookupFailed
	}

	s.logger.Debug().
		Str("city", loc.City).
		Float64("lat", loc.Lat).
		Float64("lon", loc.Lon).
		Str("provider", s.provider.Name()).
		Msg("location resolved")

	return loc, nil
}
