package domain

import "time"

// FuelStop is a planned refueling waypoint along the route polyline.
// Stops are ordered by increasing DistanceFromStartMiles and ids are
// unique within one plan.
type FuelStop struct {
	ID                     string     `json:"id"`
	Coordinate             Coordinate `json:"coordinate"`
	DistanceFromStartMiles float64    `json:"distance_from_start"`
	Address                string     `json:"address"`
}

// DailyLogEntry is one simulated day of an HOS-compliant schedule.
// Hours are rounded to one decimal and miles to the nearest integer
// at emission time; the scheduler accumulates unrounded values
// internally.
type DailyLogEntry struct {
	Day          int      `json:"day"`
	DriveHours   float64  `json:"drive_hours"`
	OnDutyHours  float64  `json:"on_duty_hours"`
	OffDutyHours float64  `json:"off_duty_hours"`
	Miles        int      `json:"miles"`
	Notes        []string `json:"notes"`
	IsRestDay    bool     `json:"is_rest_day"`
}

// TripPlan is the complete output artifact of one trip computation.
// It is immutable once returned; durable identity is assigned by the
// persistence layer, not here.
type TripPlan struct {
	RouteGeometry       []Coordinate     `json:"route_geometry"`
	TotalMiles          float64          `json:"total_miles"`
	TotalHours          float64          `json:"total_hours"`
	TotalDays           int              `json:"total_days"`
	CycleHoursRemaining float64          `json:"cycle_hours_remaining"`
	FuelStops           []FuelStop       `json:"fuel_stops"`
	DailyLogs           []DailyLogEntry  `json:"daily_logs"`
	CurrentLocation     GeocodedLocation `json:"current_location"`
	PickupLocation      GeocodedLocation `json:"pickup_location"`
	DropoffLocation     GeocodedLocation `json:"dropoff_location"`
}

// TripRecord is a stored trip: the raw inputs plus the computed plan.
type TripRecord struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	CurrentAddress string    `json:"current_address"`
	PickupAddress  string    `json:"pickup_address"`
	DropoffAddress string    `json:"dropoff_address"`
	CycleUsedHours float64   `json:"cycle_used_hours"`
	Plan           TripPlan  `json:"result"`
}
