// Package location resolves the caller's approximate location from its
// network-visible IP address.
package location

import (
	"errors"
	"time"
)

// ErrLookupFailed is returned when no location can be resolved, either
// because the geolocation provider is unreachable or because it has no
// match for the caller's IP.
var ErrLookupFailed = errors.New("location lookup failed")

// Location is the caller's approximate position. It lives for the duration
// of one request and is never stored.
type Location struct {
	// City is a best-effort city name for the IP.
	City string

	// Lat and Lon are WGS84 coordinates.
	Lat float64
	Lon float64

	// FetchedAt is when the lookup was performed.
	FetchedAt time.Time
}
