package graphhopper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
)

const defaultBaseURL = "https://graphhopper.com/api/1"

// Geocoder resolves addresses with the GraphHopper geocoding API.
// It serves as the fallback behind the primary provider; the API key
// is passed as a query parameter rather than a header.
type Geocoder struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGeocoder(apiKey string) (*Geocoder, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("graphhopper api key is empty")
	}

	return &Geocoder{
		session: &http.Client{Timeout: 20 * time.Second},
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
	}, nil
}

type geocodeResponse struct {
	Hits []struct {
		Point struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"point"`
		Name string `json:"name"`
	} `json:"hits"`
}

func (g *Geocoder) Lookup(ctx context.Context, query string) (domain.GeocodedLocation, error) {
	norm := strings.Join(strings.Fields(query), " ")
	if norm == "" {
		return domain.GeocodedLocation{}, errors.New("graphhopper geocode: query must be non-empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/geocode", nil)
	if err != nil {
		return domain.GeocodedLocation{}, fmt.Errorf("graphhopper geocode: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("q", norm)
	q.Set("limit", "1")
	q.Set("key", g.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := g.session.Do(req)
	if err != nil {
		return domain.GeocodedLocation{}, fmt.Errorf("graphhopper geocode: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return domain.GeocodedLocation{}, fmt.Errorf(
			"graphhopper geocode: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.GeocodedLocation{}, fmt.Errorf("graphhopper geocode: decode response: %w", err)
	}

	if len(decoded.Hits) == 0 {
		return domain.GeocodedLocation{}, fmt.Errorf("graphhopper geocode: no results for %q", query)
	}

	hit := decoded.Hits[0]
	label := hit.Name
	if label == "" {
		label = query
	}

	return domain.GeocodedLocation{
		Coordinate: domain.Coordinate{Lat: hit.Point.Lat, Lon: hit.Point.Lng},
		Label:      label,
		Query:      query,
	}, nil
}
