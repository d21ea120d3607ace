package handler

import (
	"net/http"
	"strconv"

	"github.com/enviroreport/enviroreport/internal/api/models"
	"github.com/enviroreport/enviroreport/internal/api/response"
	"github.com/enviroreport/enviroreport/internal/weather"
)

// WeatherHandler handles the current weather endpoint.
type WeatherHandler struct {
	service *weather.Service
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(service *weather.Service) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// GetWeather handles GET /v1/weather?lat=&lon= - current conditions for a
// coordinate pair.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	lat, lon, fieldErrs := parseCoordinates(r)
	if len(fieldErrs) > 0 {
		response.BadRequest(w, r, "invalid coordinates", fieldErrs)
		return
	}

	reading, err := h.service.Current(r.Context(), lat, lon)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toWeatherResponse(reading))
}

// parseCoordinates reads lat and lon query parameters. Range validation is
// left to the weather service.
func parseCoordinates(r *http.Request) (lat, lon float64, errs []models.FieldError) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		errs = append(errs, models.FieldError{Field: "lat", Message: "must be a number", Code: "invalid"})
	}
	lon, err = strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		errs = append(errs, models.FieldError{Field: "lon", Message: "must be a number", Code: "invalid"})
	}
	return lat, lon, errs
}

func toWeatherResponse(r *weather.Reading) models.WeatherResponse {
	resp := models.WeatherResponse{
		Latitude:    r.Lat,
		Longitude:   r.Lon,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		WindSpeed:   r.WindSpeed,
	}
	if !r.ObservedAt.IsZero() {
		observed := models.Timestamp(r.ObservedAt)
		resp.ObservedAt = &observed
	}
	return resp
}
