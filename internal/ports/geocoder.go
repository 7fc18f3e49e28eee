package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Contract for resolving a free-text address to a geographic location.
type Geocoder interface {
	// Resolve the single best match for the query.
	// Implementations must return the canonical latitude-first shape
	// regardless of the provider's wire order.
	Lookup(ctx context.Context, query string) (domain.GeocodedLocation, error)
}
