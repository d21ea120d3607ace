package airquality

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/enviroreport/enviroreport/internal/geocode"
)

// DefaultSearchRadiusMeters is how far from the city centre to look for a
// monitoring station before degrading to modeled data.
const DefaultSearchRadiusMeters = 25000

// StationProvider fetches measured pollutant values from the monitoring
// station nearest to a coordinate.
type StationProvider interface {
	// NearestReading returns the latest values from the nearest station
	// within radiusMeters, or ErrNoStationInRange if there is none.
	NearestReading(ctx context.Context, lat, lon float64, radiusMeters int) (*Reading, error)

	// Name returns the provider name for logging.
	Name() string
}

// ModelProvider synthesizes pollutant values from an air quality model when
// no station is available.
type ModelProvider interface {
	// ModeledReading returns modeled pollutant values for a coordinate.
	ModeledReading(ctx context.Context, lat, lon float64) (*Reading, error)

	// Name returns the provider name for logging.
	Name() string
}

// Geocoder resolves a city name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, city string) (*geocode.Place, error)
}

// ServiceConfig holds configuration for the air quality service.
type ServiceConfig struct {
	// Geocoder resolves city names before the station search.
	Geocoder Geocoder

	// Stations is the measured-data provider.
	Stations StationProvider

	// Model is the fallback modeled-data provider.
	Model ModelProvider

	// Logger for service operations.
	Logger zerolog.Logger

	// SearchRadiusMeters is the station search radius
	// (default: DefaultSearchRadiusMeters).
	SearchRadiusMeters int
}

// Service provides air quality readings with a modeled fallback.
type Service struct {
	geocoder     Geocoder
	stations     StationProvider
	model        ModelProvider
	logger       zerolog.Logger
	searchRadius int
}

// NewService creates a new air quality service.
func NewService(cfg ServiceConfig) *Service {
	radius := cfg.SearchRadiusMeters
	if radius == 0 {
		radius = DefaultSearchRadiusMeters
	}

	return &Service{
		geocoder:     cfg.Geocoder,
		stations:     cfg.Stations,
		model:        cfg.Model,
		logger:       cfg.Logger,
		searchRadius: radius,
	}
}

// ByCity returns an air quality reading for a named city. Geocoding errors
// (empty name, unknown city, geocoder down) pass through unchanged.
func (s *Service) ByCity(ctx context.Context, city string) (*Reading, error) {
	place, err := s.geocoder.Resolve(ctx, city)
	if err != nil {
		return nil, err
	}

	return s.ByCoordinates(ctx, place.Name, place.Lat, place.Lon)
}

// ByCoordinates returns an air quality reading for already-resolved
// coordinates. A missing station is not a failure: the reading degrades to
// modeled values. A provider that is unreachable outright is.
func (s *Service) ByCoordinates(ctx context.Context, city string, lat, lon float64) (*Reading, error) {
	reading, err := s.stations.NearestReading(ctx, lat, lon, s.searchRadius)
	if err == nil {
		reading.City = city
		s.logger.Debug().
			Str("city", city).
			Str("station", reading.Station.Name).
			Float64("distance_m", reading.Station.DistanceMeters).
			Msg("using measured air quality data")
		return reading, nil
	}

	if !errors.Is(err, ErrNoStationInRange) {
		s.logger.Error().Err(err).
			Str("city", city).
			Str("provider", s.stations.Name()).
			Msg("failed to fetch station data")
		return nil, ErrProviderUnavailable
	}

	s.logger.Info().
		Str("city", city).
		Int("radius_m", s.searchRadius).
		Msg("no station in range, falling back to modeled data")

	reading, err = s.model.ModeledReading(ctx, lat, lon)
	if err != nil {
		s.logger.Error().Err(err).
			Str("city", city).
			Str("provider", s.model.Name()).
			Msg("failed to fetch modeled data")
		return nil, ErrProviderUnavailable
	}

	reading.City = city
	return reading, nil
}
