package ors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"trip-planner-service/internal/domain"
)

// Geocoder resolves addresses with the OpenRouteService
// /geocode/search endpoint. Only the first match is used.
type Geocoder struct {
	client *Client
}

func NewGeocoder(client *Client) *Geocoder {
	return &Geocoder{client: client}
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

func (g *Geocoder) Lookup(ctx context.Context, query string) (domain.GeocodedLocation, error) {
	norm := strings.Join(strings.Fields(query), " ")
	if norm == "" {
		return domain.GeocodedLocation{}, fmt.Errorf("ors geocode: query must be non-empty")
	}

	endpoint := g.client.baseURL + "/geocode/search"

	resp, err := g.client.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.client.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", norm)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.GeocodedLocation{}, fmt.Errorf("ors geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GeocodedLocation{}, fmt.Errorf("ors geocode: decode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.GeocodedLocation{}, fmt.Errorf("ors geocode: no results for %q", query)
	}

	feat := decoded.Features[0]
	if len(feat.Geometry.Coordinates) != 2 {
		return domain.GeocodedLocation{}, fmt.Errorf("ors geocode: invalid coordinate format for %q", query)
	}

	label := feat.Properties.Label
	if label == "" {
		label = query
	}

	// ORS returns lon,lat; expose the canonical latitude-first shape.
	return domain.GeocodedLocation{
		Coordinate: domain.Coordinate{
			Lat: feat.Geometry.Coordinates[1],
			Lon: feat.Geometry.Coordinates[0],
		},
		Label: label,
		Query: query,
	}, nil
}
