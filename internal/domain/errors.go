package domain

import (
	"errors"
	"fmt"
)

// ErrRouteUnavailable reports that the routing backend failed or
// returned no usable route. A missing route is terminal for the trip
// computation; there is no fallback provider at that layer.
var ErrRouteUnavailable = errors.New("route unavailable")

// GeocodingError reports that every configured geocoding provider
// failed or returned no match for a query.
type GeocodingError struct {
	Query string
	Err   error
}

func (e *GeocodingError) Error() string {
	return fmt.Sprintf("geocoding failed for %q: %v", e.Query, e.Err)
}

func (e *GeocodingError) Unwrap() error { return e.Err }

// InvalidInputError reports that trip inputs failed basic validation
// before any provider call was made.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}
