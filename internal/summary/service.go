package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/enviroreport/enviroreport/internal/airquality"
	"github.com/enviroreport/enviroreport/internal/geocode"
	"github.com/enviroreport/enviroreport/internal/weather"
)

// Geocoder resolves a city name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, city string) (*geocode.Place, error)
}

// WeatherLookup fetches current weather for a coordinate.
type WeatherLookup interface {
	Current(ctx context.Context, lat, lon float64) (*weather.Reading, error)
}

// AirQualityLookup fetches an air quality reading for already-resolved
// coordinates.
type AirQualityLookup interface {
	ByCoordinates(ctx context.Context, city string, lat, lon float64) (*airquality.Reading, error)
}

// ServiceConfig holds configuration for the summary service.
type ServiceConfig struct {
	Geocoder   Geocoder
	Weather    WeatherLookup
	AirQuality AirQualityLookup

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service builds environment summaries by composing the weather and air
// quality lookups.
type Service struct {
	geocoder   Geocoder
	weather    WeatherLookup
	airquality AirQualityLookup
	logger     zerolog.Logger
}

// NewService creates a new summary service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		geocoder:   cfg.Geocoder,
		weather:    cfg.Weather,
		airquality: cfg.AirQuality,
		logger:     cfg.Logger,
	}
}

// Summarize resolves the city once, then fetches weather and air quality
// concurrently. The two sub-calls have no ordering dependency on each
// other. If either fails its error is surfaced unchanged; there are no
// partial summaries.
func (s *Service) Summarize(ctx context.Context, city string) (*Summary, error) {
	place, err := s.geocoder.Resolve(ctx, city)
	if err != nil {
		return nil, err
	}

	var (
		weatherReading *weather.Reading
		aqReading      *airquality.Reading
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var werr error
		weatherReading, werr = s.weather.Current(gctx, place.Lat, place.Lon)
		return werr
	})
	g.Go(func() error {
		var aerr error
		aqReading, aerr = s.airquality.ByCoordinates(gctx, place.Name, place.Lat, place.Lon)
		return aerr
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{
		City:        place.Name,
		Country:     place.Country,
		Lat:         place.Lat,
		Lon:         place.Lon,
		Weather:     weatherReading,
		AirQuality:  aqReading,
		GeneratedAt: time.Now(),
	}
	sum.Report = renderReport(sum)

	s.logger.Debug().
		Str("city", sum.City).
		Str("aq_source", string(aqReading.Source)).
		Msg("environment summary assembled")

	return sum, nil
}

// renderReport builds the human-readable report line.
func renderReport(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Weather in %s: %.1f°C, %.0f%% humidity, wind %.1f km/h.",
		s.City, s.Weather.Temperature, s.Weather.Humidity, s.Weather.WindSpeed)

	b.WriteString(" Air quality: ")
	b.WriteString(renderPollutants(s.AirQuality))
	fmt.Fprintf(&b, " [%s].", s.AirQuality.Source)

	return b.String()
}

// renderPollutants formats pollutant values in display order.
func renderPollutants(r *airquality.Reading) string {
	parts := make([]string, 0, len(r.Values))
	for _, p := range airquality.Pollutants() {
		if v, ok := r.Values[p]; ok {
			parts = append(parts, fmt.Sprintf("%s %.1f", p, v))
		}
	}
	if len(parts) == 0 {
		return "no data"
	}
	return strings.Join(parts, ", ") + " µg/m³"
}
