package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/metrics"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// TripPlanner orchestrates one trip computation: geocode the three
// addresses, request a single route across them, then derive fuel
// stops and the HOS daily-log schedule from the route totals.
//
// Any component failure aborts the whole computation; no partial plan
// is ever returned.
type TripPlanner struct {
	Geocoder ports.Geocoder
	Routes   ports.RouteProvider
	Log      *zap.Logger

	// Metrics is optional; when set, route outcomes are counted.
	Metrics *metrics.Collector
}

func NewTripPlanner(geocoder ports.Geocoder, routes ports.RouteProvider, log *zap.Logger) *TripPlanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &TripPlanner{Geocoder: geocoder, Routes: routes, Log: log}
}

type PlanTripRequest struct {
	CurrentAddress string
	PickupAddress  string
	DropoffAddress string
	CycleUsedHours float64
}

// Validate checks the request before any provider call is made.
func (r PlanTripRequest) Validate() error {
	for field, v := range map[string]string{
		"current_address": r.CurrentAddress,
		"pickup_address":  r.PickupAddress,
		"dropoff_address": r.DropoffAddress,
	} {
		if strings.TrimSpace(v) == "" {
			return &domain.InvalidInputError{Field: field, Reason: "must be non-empty"}
		}
	}
	if r.CycleUsedHours < 0 || r.CycleUsedHours > maxCycleHours {
		return &domain.InvalidInputError{Field: "cycle_used_hours", Reason: "must be between 0 and 70"}
	}
	return nil
}

// PlanTrip computes a complete trip plan for the request.
//
// The three geocode lookups are independent and issued concurrently;
// the first failure cancels the siblings and aborts the computation.
// The route request strictly depends on all three results.
func (p *TripPlanner) PlanTrip(ctx context.Context, req PlanTripRequest) (_ *domain.TripPlan, err error) {
	defer obs.Time(p.Log, "planner.PlanTrip")(&err)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	queries := [3]string{req.CurrentAddress, req.PickupAddress, req.DropoffAddress}
	var locs [3]domain.GeocodedLocation

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			loc, err := p.Geocoder.Lookup(gctx, q)
			if err != nil {
				return err
			}
			locs[i] = loc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	waypoints := []domain.Coordinate{locs[0].Coordinate, locs[1].Coordinate, locs[2].Coordinate}
	route, err := p.Routes.Route(ctx, waypoints)
	if p.Metrics != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		p.Metrics.RouteCalls.WithLabelValues(outcome).Inc()
	}
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	totalMiles := math.Round(MilesFromMeters(route.DistanceMeters))
	drivingHours := HoursFromSeconds(route.DurationSeconds)
	totalHours := drivingHours + handlingHours

	fuelStops := PlanFuelStops(totalMiles, route.Geometry)
	logs := GenerateDailyLogs(totalMiles, drivingHours, req.CycleUsedHours)

	p.Log.Info("trip planned",
		zap.Float64("total_miles", totalMiles),
		zap.Float64("driving_hours", drivingHours),
		zap.Int("fuel_stops", len(fuelStops)),
		zap.Int("days", len(logs)),
	)

	return &domain.TripPlan{
		RouteGeometry:       route.Geometry,
		TotalMiles:          totalMiles,
		TotalHours:          round1(totalHours),
		TotalDays:           len(logs),
		CycleHoursRemaining: round1(math.Max(0, maxCycleHours-req.CycleUsedHours-totalHours)),
		FuelStops:           fuelStops,
		DailyLogs:           logs,
		CurrentLocation:     locs[0],
		PickupLocation:      locs[1],
		DropoffLocation:     locs[2],
	}, nil
}
