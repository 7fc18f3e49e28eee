package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Contract for obtaining a driving route through ordered waypoints.
type RouteProvider interface {
	// Compute one route visiting the waypoints in the order given.
	// At least two waypoints are required.
	Route(ctx context.Context, waypoints []domain.Coordinate) (domain.RouteResult, error)
}
