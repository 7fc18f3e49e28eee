package ors

import (
	"context"

	"trip-planner-service/internal/domain"
)

// MockRouteProvider returns a fixed result or error, for tests that
// must not touch the network.
type MockRouteProvider struct {
	Result domain.RouteResult
	Err    error
}

func (m *MockRouteProvider) Route(ctx context.Context, waypoints []domain.Coordinate) (domain.RouteResult, error) {
	if m.Err != nil {
		return domain.RouteResult{}, m.Err
	}
	return m.Result, nil
}
