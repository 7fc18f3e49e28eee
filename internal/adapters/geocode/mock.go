package geocode

import (
	"context"
	"fmt"
	"sync"

	"trip-planner-service/internal/domain"
)

// MockGeocoder resolves queries from a fixed table, for tests that
// must not touch the network. Calls counts each Lookup and is safe
// under concurrent lookups.
type MockGeocoder struct {
	Locations map[string]domain.GeocodedLocation
	Err       error

	mu    sync.Mutex
	Calls int
}

func NewMockGeocoder(locs ...domain.GeocodedLocation) *MockGeocoder {
	m := &MockGeocoder{Locations: make(map[string]domain.GeocodedLocation, len(locs))}
	for _, l := range locs {
		m.Locations[l.Query] = l
	}
	return m
}

func (m *MockGeocoder) Lookup(ctx context.Context, query string) (domain.GeocodedLocation, error) {
	m.mu.Lock()
	m.Calls++
	m.mu.Unlock()
	if m.Err != nil {
		return domain.GeocodedLocation{}, m.Err
	}
	loc, ok := m.Locations[query]
	if !ok {
		return domain.GeocodedLocation{}, fmt.Errorf("no mock result for %q", query)
	}
	return loc, nil
}
