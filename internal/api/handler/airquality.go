package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/enviroreport/enviroreport/internal/airquality"
	"github.com/enviroreport/enviroreport/internal/api/models"
	"github.com/enviroreport/enviroreport/internal/api/response"
)

// AirQualityHandler handles the city air quality endpoint.
type AirQualityHandler struct {
	service *airquality.Service
}

// NewAirQualityHandler creates a new AirQualityHandler.
func NewAirQualityHandler(service *airquality.Service) *AirQualityHandler {
	return &AirQualityHandler{service: service}
}

// GetAirQuality handles GET /v1/air-quality/{city} - pollutant levels from
// the nearest monitoring station, falling back to modeled data when no
// station is in range.
func (h *AirQualityHandler) GetAirQuality(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	reading, err := h.service.ByCity(r.Context(), city)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toAirQualityResponse(reading))
}

func toAirQualityResponse(r *airquality.Reading) models.AirQualityResponse {
	values := make(map[string]float64, len(r.Values))
	for p, v := range r.Values {
		values[string(p)] = v
	}

	resp := models.AirQualityResponse{
		City:            r.City,
		Latitude:        r.Lat,
		Longitude:       r.Lon,
		PollutantValues: values,
		Source:          string(r.Source),
	}
	if r.Station != nil {
		resp.Station = &models.StationResponse{
			ID:             r.Station.ID,
			Name:           r.Station.Name,
			Latitude:       r.Station.Lat,
			Longitude:      r.Station.Lon,
			DistanceMeters: r.Station.DistanceMeters,
		}
	}
	return resp
}
