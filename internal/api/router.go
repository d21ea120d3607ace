// Package api provides the HTTP API for enviroreport.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/enviroreport/enviroreport/internal/airquality"
	"github.com/enviroreport/enviroreport/internal/api/handler"
	"github.com/enviroreport/enviroreport/internal/api/middleware"
	"github.com/enviroreport/enviroreport/internal/location"
	"github.com/enviroreport/enviroreport/internal/provider/resilience"
	"github.com/enviroreport/enviroreport/internal/summary"
	"github.com/enviroreport/enviroreport/internal/weather"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version   string
	BuildTime string
	Logger    zerolog.Logger
	Metrics   *middleware.Metrics

	LocationService   *location.Service
	WeatherService    *weather.Service
	AirQualityService *airquality.Service
	SummaryService    *summary.Service

	Providers *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware - order matters
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing)
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.ContentTypeJSON)

	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.Providers)
	locationHandler := handler.NewLocationHandler(cfg.LocationService)
	weatherHandler := handler.NewWeatherHandler(cfg.WeatherService)
	airQualityHandler := handler.NewAirQualityHandler(cfg.AirQualityService)
	environmentHandler := handler.NewEnvironmentHandler(cfg.SummaryService)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/location", locationHandler.GetLocation)
		r.Get("/weather", weatherHandler.GetWeather)
		r.Get("/air-quality/{city}", airQualityHandler.GetAirQuality)
		r.Get("/environment/{city}", environmentHandler.GetEnvironment)

		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})
	})

	return r
}
