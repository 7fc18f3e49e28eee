package services

import (
	"fmt"
	"math"

	"trip-planner-service/internal/domain"
)

// PlanFuelStops places one stop per full 1000-mile increment of the
// trip, never at mile 0 and never past the end.
//
// Stop i of n is taken at polyline index floor(len * i / (n+1)), i.e.
// stops are spread across the route's point sequence by fractional
// position rather than by cumulative along-route distance. Polyline
// points are roughly evenly spaced on real road networks, so this is
// a reasonable but not distance-exact approximation; it is kept
// deliberately because downstream consumers depend on the existing
// placement.
func PlanFuelStops(totalMiles float64, geometry []domain.Coordinate) []domain.FuelStop {
	stops := []domain.FuelStop{}
	if totalMiles <= 0 || len(geometry) == 0 {
		return stops
	}

	n := int(math.Floor(totalMiles / 1000))
	for i := 1; i <= n; i++ {
		idx := int(math.Floor(float64(len(geometry)) * float64(i) / float64(n+1)))
		stops = append(stops, domain.FuelStop{
			ID:                     fmt.Sprintf("fuel-%d", i),
			Coordinate:             geometry[idx],
			DistanceFromStartMiles: float64(i * 1000),
			Address:                fmt.Sprintf("Fuel Stop %d - Mile %d", i, i*1000),
		})
	}

	return stops
}
