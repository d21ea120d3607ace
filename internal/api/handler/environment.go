package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/enviroreport/enviroreport/internal/api/models"
	"github.com/enviroreport/enviroreport/internal/api/response"
	"github.com/enviroreport/enviroreport/internal/summary"
)

// EnvironmentHandler handles the combined environment summary endpoint.
type EnvironmentHandler struct {
	service *summary.Service
}

// NewEnvironmentHandler creates a new EnvironmentHandler.
func NewEnvironmentHandler(service *summary.Service) *EnvironmentHandler {
	return &EnvironmentHandler{service: service}
}

// GetEnvironment handles GET /v1/environment/{city} - weather and air
// quality for a city in a single response.
func (h *EnvironmentHandler) GetEnvironment(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	sum, err := h.service.Summarize(r.Context(), city)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.EnvironmentSummaryResponse{
		City:        sum.City,
		Country:     sum.Country,
		Latitude:    sum.Lat,
		Longitude:   sum.Lon,
		Weather:     toWeatherResponse(sum.Weather),
		AirQuality:  toAirQualityResponse(sum.AirQuality),
		Report:      sum.Report,
		GeneratedAt: models.Timestamp(sum.GeneratedAt),
	})
}
