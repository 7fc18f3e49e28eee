package domain

// RouteResult is the raw outcome of one routing backend call.
// It is produced once per trip computation and read-only downstream.
// Geometry is the route polyline in start-to-end order, canonical
// latitude-first coordinates, always at least two points.
type RouteResult struct {
	DistanceMeters  float64
	DurationSeconds float64
	Geometry        []Coordinate
}
