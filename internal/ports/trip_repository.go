package ports

import (
	"context"
	"errors"

	"trip-planner-service/internal/domain"
)

// ErrTripNotFound is returned by GetTrip when no record exists for
// the given identifier.
var ErrTripNotFound = errors.New("trip not found")

// Port: a boundary for storing and retrieving computed trips.
// The core never reads back its own output for correctness; storage
// is fire-and-forget from its perspective.
type TripRepository interface {
	// Persist a finished trip and return it with a durable identifier
	// and timestamps assigned.
	SaveTrip(ctx context.Context, rec domain.TripRecord) (domain.TripRecord, error)
	// Retrieve a stored trip by identifier.
	GetTrip(ctx context.Context, id string) (domain.TripRecord, error)
}
