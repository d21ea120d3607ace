// Package main provides the entrypoint for the enviroreport API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/enviroreport/enviroreport/internal/airquality"
	"github.com/enviroreport/enviroreport/internal/airquality/openaq"
	aqmodel "github.com/enviroreport/enviroreport/internal/airquality/openmeteo"
	"github.com/enviroreport/enviroreport/internal/api"
	"github.com/enviroreport/enviroreport/internal/api/middleware"
	"github.com/enviroreport/enviroreport/internal/config"
	"github.com/enviroreport/enviroreport/internal/geocode"
	geoprovider "github.com/enviroreport/enviroreport/internal/geocode/openmeteo"
	"github.com/enviroreport/enviroreport/internal/location"
	"github.com/enviroreport/enviroreport/internal/location/ipapi"
	"github.com/enviroreport/enviroreport/internal/provider/resilience"
	"github.com/enviroreport/enviroreport/internal/summary"
	"github.com/enviroreport/enviroreport/internal/telemetry"
	"github.com/enviroreport/enviroreport/internal/weather"
	weatherprovider "github.com/enviroreport/enviroreport/internal/weather/openmeteo"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "enviroreport-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting enviroreport API")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    cfg.Env,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		Enabled:        cfg.Telemetry.Enabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.Telemetry.Enabled {
		log.Info().
			Str("otlp_endpoint", cfg.Telemetry.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// One circuit-breaker-protected client per upstream provider, all
	// reporting into the registry behind /v1/ops/status.
	registry := resilience.NewRegistry()
	providerClient := func(name string) *resilience.InstrumentedClient {
		cbCfg := resilience.DefaultCircuitBreakerConfig(name)
		cbCfg.OnStateChange = func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("provider", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		}
		client := resilience.NewClient(resilience.ClientConfig{
			Name:           name,
			Timeout:        cfg.Providers.Timeout,
			CircuitBreaker: &cbCfg,
		})
		return registry.Instrument(name, client)
	}

	// Initialize location service (IP geolocation)
	locationService := location.NewService(location.ServiceConfig{
		Provider: ipapi.NewClient(ipapi.ClientConfig{
			BaseURL:    cfg.Providers.IPAPIBaseURL,
			HTTPClient: providerClient(ipapi.ProviderName),
		}),
		Logger: log,
	})
	log.Info().Msg("location service initialized")

	// Initialize geocoding service
	geocodeService := geocode.NewService(geocode.ServiceConfig{
		Provider: geoprovider.NewClient(geoprovider.ClientConfig{
			BaseURL:    cfg.Providers.GeocodingBaseURL,
			HTTPClient: providerClient(geoprovider.ProviderName),
		}),
		Logger: log,
	})
	log.Info().Msg("geocoding service initialized")

	// Initialize weather service
	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: weatherprovider.NewClient(weatherprovider.ClientConfig{
			BaseURL:    cfg.Providers.WeatherBaseURL,
			HTTPClient: providerClient(weatherprovider.ProviderName),
		}),
		Logger: log,
	})
	log.Info().Msg("weather service initialized")

	// Initialize air quality service (measured stations with modeled fallback)
	if cfg.Providers.OpenAQAPIKey == "" {
		log.Warn().Msg("OPENAQ_API_KEY not set - station lookups will fail and readings fall back to modeled data")
	}
	airQualityService := airquality.NewService(airquality.ServiceConfig{
		Geocoder: geocodeService,
		Stations: openaq.NewClient(openaq.ClientConfig{
			APIKey:     cfg.Providers.OpenAQAPIKey,
			BaseURL:    cfg.Providers.OpenAQBaseURL,
			HTTPClient: providerClient(openaq.ProviderName),
		}),
		Model: aqmodel.NewClient(aqmodel.ClientConfig{
			BaseURL:    cfg.Providers.AQModelBaseURL,
			HTTPClient: providerClient(aqmodel.ProviderName),
		}),
		Logger:             log,
		SearchRadiusMeters: cfg.Providers.AQSearchRadiusMeters,
	})
	log.Info().Msg("air quality service initialized")

	// Initialize summary service
	summaryService := summary.NewService(summary.ServiceConfig{
		Geocoder:   geocodeService,
		Weather:    weatherService,
		AirQuality: airQualityService,
		Logger:     log,
	})
	log.Info().Msg("summary service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:           Version,
		BuildTime:         BuildTime,
		Logger:            log,
		Metrics:           metrics,
		LocationService:   locationService,
		WeatherService:    weatherService,
		AirQualityService: airQualityService,
		SummaryService:    summaryService,
		Providers:         registry,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
