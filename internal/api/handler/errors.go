package handler

import (
	"errors"
	"net/http"

	"github.com/enviroreport/enviroreport/internal/api/models"
	"github.com/enviroreport/enviroreport/internal/api/response"
	"github.com/enviroreport/enviroreport/internal/geocode"
	"github.com/enviroreport/enviroreport/internal/location"
	"github.com/enviroreport/enviroreport/internal/weather"
)

// writeDomainError maps service errors onto problem responses. Input errors
// become 400, unknown cities 404, and any upstream provider failure 502.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, geocode.ErrEmptyCity):
		response.BadRequest(w, r, "city must not be empty", []models.FieldError{
			{Field: "city", Message: "must not be empty", Code: "required"},
		})
	case errors.Is(err, weather.ErrInvalidCoordinates):
		response.BadRequest(w, r, "latitude must be in [-90, 90] and longitude in [-180, 180]", nil)
	case errors.Is(err, geocode.ErrCityNotFound):
		response.NotFound(w, r, "no matching city was found")
	case errors.Is(err, location.ErrLookupFailed):
		response.BadGateway(w, r, "caller location could not be determined")
	default:
		response.BadGateway(w, r, "an upstream data provider is unavailable")
	}
}
