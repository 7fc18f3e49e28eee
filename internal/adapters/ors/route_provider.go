package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"trip-planner-service/internal/domain"
)

// Routing profile for heavy goods vehicles.
const routingProfile = "driving-hgv"

// RouteProvider obtains driving routes from the OpenRouteService
// directions endpoint. There is no fallback at this layer: a failed
// or empty route is terminal for the trip computation.
type RouteProvider struct {
	client *Client
}

func NewRouteProvider(client *Client) *RouteProvider {
	return &RouteProvider{client: client}
}

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

func (p *RouteProvider) Route(ctx context.Context, waypoints []domain.Coordinate) (domain.RouteResult, error) {
	if len(waypoints) < 2 {
		return domain.RouteResult{}, errors.New("ors route: at least two waypoints are required")
	}

	// ORS expects lon,lat pairs.
	coords := make([][]float64, 0, len(waypoints))
	for _, w := range waypoints {
		coords = append(coords, w.LonLat())
	}

	payload, err := json.Marshal(directionsRequest{Coordinates: coords, Instructions: false})
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("ors route: marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/directions/%s", p.client.baseURL, routingProfile)

	resp, err := p.client.doWithRetry(ctx, func() (*http.Request, error) {
		return p.client.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("%w: %w", domain.ErrRouteUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RouteResult{}, fmt.Errorf("%w: decode response: %w", domain.ErrRouteUnavailable, err)
	}

	if len(decoded.Features) == 0 {
		return domain.RouteResult{}, fmt.Errorf("%w: empty feature set", domain.ErrRouteUnavailable)
	}

	feat := decoded.Features[0]
	if len(feat.Geometry.Coordinates) < 2 {
		return domain.RouteResult{}, fmt.Errorf("%w: degenerate geometry", domain.ErrRouteUnavailable)
	}

	geometry := make([]domain.Coordinate, 0, len(feat.Geometry.Coordinates))
	for _, pair := range feat.Geometry.Coordinates {
		if len(pair) != 2 {
			return domain.RouteResult{}, fmt.Errorf("%w: invalid coordinate pair", domain.ErrRouteUnavailable)
		}
		geometry = append(geometry, domain.Coordinate{Lat: pair[1], Lon: pair[0]})
	}

	return domain.RouteResult{
		DistanceMeters:  feat.Properties.Summary.Distance,
		DurationSeconds: feat.Properties.Summary.Duration,
		Geometry:        geometry,
	}, nil
}
