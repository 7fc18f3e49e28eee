package domain

// Immutable geographic coordinate, canonical latitude-first order.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the coordinate lies in the WGS84 range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Return the coordinate as [lon, lat] for external API compatibility.
// OpenRouteService and GeoJSON are longitude-first on the wire.
func (c Coordinate) LonLat() []float64 { return []float64{c.Lon, c.Lat} }
