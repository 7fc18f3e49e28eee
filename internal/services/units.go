package services

const (
	metersPerMile  = 1609.34
	secondsPerHour = 3600.0

	// Fixed allowance for pickup and drop-off handling, added on top
	// of driving-only hours when reporting total trip hours.
	handlingHours = 2.0
)

// MilesFromMeters converts a route distance to statute miles.
func MilesFromMeters(m float64) float64 { return m / metersPerMile }

// HoursFromSeconds converts a route duration to hours.
func HoursFromSeconds(s float64) float64 { return s / secondsPerHour }
