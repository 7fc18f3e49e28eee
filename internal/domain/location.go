package domain

// GeocodedLocation is the resolved form of a free-text address.
// It is produced once per lookup and never mutated afterwards.
type GeocodedLocation struct {
	Coordinate
	// Label is the provider's canonical display name for the match.
	Label string `json:"display_name"`
	// Query is the original free-text address that was resolved.
	Query string `json:"-"`
}
