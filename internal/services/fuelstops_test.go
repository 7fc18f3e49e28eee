package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func testGeometry(n int) []domain.Coordinate {
	geom := make([]domain.Coordinate, 0, n)
	for i := 0; i < n; i++ {
		geom = append(geom, domain.Coordinate{
			Lat: 33.0 + float64(i)*0.01,
			Lon: -112.0 + float64(i)*0.01,
		})
	}
	return geom
}

func TestPlanFuelStopsCount(t *testing.T) {
	geom := testGeometry(500)

	tests := []struct {
		miles float64
		want  int
	}{
		{0, 0},
		{-5, 0},
		{999.9, 0},
		{1000, 1},
		{1999, 1},
		{2500, 2},
		{10000, 10},
	}

	for _, tt := range tests {
		stops := PlanFuelStops(tt.miles, geom)
		assert.Len(t, stops, tt.want, "totalMiles=%v", tt.miles)
	}
}

func TestPlanFuelStopsEmptyGeometry(t *testing.T) {
	stops := PlanFuelStops(3500, nil)
	assert.Empty(t, stops)
}

func TestPlanFuelStopsIDsAndDistances(t *testing.T) {
	stops := PlanFuelStops(3200, testGeometry(400))
	require.Len(t, stops, 3)

	for i, s := range stops {
		assert.Equal(t, fmt.Sprintf("fuel-%d", i+1), s.ID)
		assert.Equal(t, float64((i+1)*1000), s.DistanceFromStartMiles)
		assert.Equal(t, fmt.Sprintf("Fuel Stop %d - Mile %d", i+1, (i+1)*1000), s.Address)
	}
}

// Placement is by fractional polyline index, not cumulative distance:
// stop i of n sits at index floor(len * i / (n+1)). The expectations
// below pin that approximation so it is not "fixed" accidentally.
func TestPlanFuelStopsFractionalIndexPlacement(t *testing.T) {
	geom := testGeometry(400)
	stops := PlanFuelStops(3200, geom)
	require.Len(t, stops, 3)

	// n=3: indices 400*1/4=100, 400*2/4=200, 400*3/4=300.
	assert.Equal(t, geom[100], stops[0].Coordinate)
	assert.Equal(t, geom[200], stops[1].Coordinate)
	assert.Equal(t, geom[300], stops[2].Coordinate)
}

func TestPlanFuelStopsIndexStaysInBounds(t *testing.T) {
	geom := testGeometry(3)
	stops := PlanFuelStops(9000, geom)
	require.Len(t, stops, 9)
	for _, s := range stops {
		assert.True(t, s.Coordinate.Valid())
	}
}
