// Package handler provides HTTP handlers for the enviroreport API.
package handler

import (
	"net/http"

	"github.com/enviroreport/enviroreport/internal/api/models"
	"github.com/enviroreport/enviroreport/internal/api/response"
	"github.com/enviroreport/enviroreport/internal/location"
)

// LocationHandler handles the caller geolocation endpoint.
type LocationHandler struct {
	service *location.Service
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(service *location.Service) *LocationHandler {
	return &LocationHandler{service: service}
}

// GetLocation handles GET /v1/location - approximate caller location by IP.
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, err := h.service.Lookup(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.LocationResponse{
		City:      loc.City,
		Latitude:  loc.Lat,
		Longitude: loc.Lon,
	})
}
