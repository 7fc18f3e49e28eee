package dto

import "time"

type ComputeTripRequest struct {
	CurrentAddress string  `json:"current_address"`
	PickupAddress  string  `json:"pickup_address"`
	DropoffAddress string  `json:"dropoff_address"`
	CycleUsedHours float64 `json:"cycle_used_hours"`
}

type LocationResponse struct {
	DisplayName string  `json:"display_name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

type FuelStopResponse struct {
	ID                string  `json:"id"`
	Lat               float64 `json:"lat"`
	Lon               float64 `json:"lon"`
	DistanceFromStart float64 `json:"distance_from_start"`
	Address           string  `json:"address"`
}

type DailyLogResponse struct {
	Day          int      `json:"day"`
	DriveHours   float64  `json:"drive_hours"`
	OnDutyHours  float64  `json:"on_duty_hours"`
	OffDutyHours float64  `json:"off_duty_hours"`
	Miles        int      `json:"miles"`
	Notes        []string `json:"notes"`
	IsRestDay    bool     `json:"is_rest_day"`
}

// TripPlanResponse is the serialized plan: route geometry as lat,lon
// pairs plus the derived totals, fuel stops, and daily logs.
type TripPlanResponse struct {
	ID                  string             `json:"id"`
	RouteGeometry       [][]float64        `json:"route_geometry"`
	TotalMiles          float64            `json:"total_miles"`
	TotalHours          float64            `json:"total_hours"`
	TotalDays           int                `json:"total_days"`
	CycleHoursRemaining float64            `json:"cycle_hours_remaining"`
	FuelStops           []FuelStopResponse `json:"fuel_stops"`
	DailyLogs           []DailyLogResponse `json:"daily_logs"`
	CurrentLocation     LocationResponse   `json:"current_location"`
	PickupLocation      LocationResponse   `json:"pickup_location"`
	DropoffLocation     LocationResponse   `json:"dropoff_location"`
}

type TripRecordResponse struct {
	ID             string           `json:"id"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	CurrentAddress string           `json:"current_address"`
	PickupAddress  string           `json:"pickup_address"`
	DropoffAddress string           `json:"dropoff_address"`
	CycleUsedHours float64          `json:"cycle_used_hours"`
	Result         TripPlanResponse `json:"result"`
}
