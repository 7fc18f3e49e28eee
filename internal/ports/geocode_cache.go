package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Port: a cache of resolved addresses sitting in front of the
// geocoding providers. A miss is (zero value, false, nil); cache
// errors are reported but callers treat them as misses.
type GeocodeCache interface {
	Get(ctx context.Context, query string) (domain.GeocodedLocation, bool, error)
	Put(ctx context.Context, loc domain.GeocodedLocation) error
}
