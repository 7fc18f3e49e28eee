package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/ors"
	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

func testLogger() *zap.Logger { return zap.NewNop() }

// In-memory TripRepository for handler tests.
type memTripRepository struct {
	trips map[string]domain.TripRecord
	next  int
}

func newMemTripRepository() *memTripRepository {
	return &memTripRepository{trips: map[string]domain.TripRecord{}}
}

func (m *memTripRepository) SaveTrip(ctx context.Context, rec domain.TripRecord) (domain.TripRecord, error) {
	m.next++
	rec.ID = fmt.Sprintf("trip-%03d", m.next)
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	m.trips[rec.ID] = rec
	return rec, nil
}

func (m *memTripRepository) GetTrip(ctx context.Context, id string) (domain.TripRecord, error) {
	rec, ok := m.trips[id]
	if !ok {
		return domain.TripRecord{}, ports.ErrTripNotFound
	}
	return rec, nil
}

func testRouter(t *testing.T, routeErr error) (http.Handler, *memTripRepository) {
	t.Helper()

	geocoder := geocode.NewMockGeocoder(
		domain.GeocodedLocation{Coordinate: domain.Coordinate{Lat: 33.45, Lon: -112.07}, Label: "Phoenix, AZ, USA", Query: "Phoenix, AZ"},
		domain.GeocodedLocation{Coordinate: domain.Coordinate{Lat: 32.22, Lon: -110.97}, Label: "Tucson, AZ, USA", Query: "Tucson, AZ"},
		domain.GeocodedLocation{Coordinate: domain.Coordinate{Lat: 31.76, Lon: -106.49}, Label: "El Paso, TX, USA", Query: "El Paso, TX"},
	)

	geometry := []domain.Coordinate{
		{Lat: 33.45, Lon: -112.07},
		{Lat: 32.22, Lon: -110.97},
		{Lat: 31.76, Lon: -106.49},
	}
	routes := &ors.MockRouteProvider{
		Result: domain.RouteResult{
			DistanceMeters:  500 * 1609.34,
			DurationSeconds: 8 * 3600,
			Geometry:        geometry,
		},
		Err: routeErr,
	}

	repo := newMemTripRepository()
	trips := &handlers.TripHandler{
		Planner: services.NewTripPlanner(geocoder, routes, nil),
		Repo:    repo,
		Log:     testLogger(),
	}

	return NewRouter(trips, nil, testLogger()), repo
}

func computeBody(t *testing.T, cycleUsed float64) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"current_address":  "Phoenix, AZ",
		"pickup_address":   "Tucson, AZ",
		"dropoff_address":  "El Paso, TX",
		"cycle_used_hours": cycleUsed,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func TestComputeTrip(t *testing.T) {
	router, _ := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/trips", computeBody(t, 10))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var res struct {
		ID                  string      `json:"id"`
		TotalMiles          float64     `json:"total_miles"`
		TotalHours          float64     `json:"total_hours"`
		TotalDays           int         `json:"total_days"`
		CycleHoursRemaining float64     `json:"cycle_hours_remaining"`
		RouteGeometry       [][]float64 `json:"route_geometry"`
		DailyLogs           []struct {
			Day        int     `json:"day"`
			DriveHours float64 `json:"drive_hours"`
		} `json:"daily_logs"`
		CurrentLocation struct {
			DisplayName string `json:"display_name"`
		} `json:"current_location"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 500.0, res.TotalMiles)
	assert.Equal(t, 10.0, res.TotalHours)
	assert.Equal(t, 1, res.TotalDays)
	assert.Equal(t, 50.0, res.CycleHoursRemaining)
	require.Len(t, res.DailyLogs, 1)
	assert.Equal(t, 8.0, res.DailyLogs[0].DriveHours)
	assert.Equal(t, "Phoenix, AZ, USA", res.CurrentLocation.DisplayName)
	// Geometry is returned latitude-first.
	require.NotEmpty(t, res.RouteGeometry)
	assert.InDelta(t, 33.45, res.RouteGeometry[0][0], 1e-9)
}

func TestComputeTripThenGet(t *testing.T) {
	router, _ := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/trips", computeBody(t, 0))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	getReq := httptest.NewRequest(http.MethodGet, "/api/trips/"+created.ID, nil)
	getRR := httptest.NewRecorder()
	router.ServeHTTP(getRR, getReq)
	require.Equal(t, http.StatusOK, getRR.Code)

	var rec struct {
		ID             string  `json:"id"`
		CurrentAddress string  `json:"current_address"`
		CycleUsedHours float64 `json:"cycle_used_hours"`
		Result         struct {
			TotalMiles float64 `json:"total_miles"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(getRR.Body.Bytes(), &rec))
	assert.Equal(t, created.ID, rec.ID)
	assert.Equal(t, "Phoenix, AZ", rec.CurrentAddress)
	assert.Equal(t, 500.0, rec.Result.TotalMiles)
}

func TestComputeTripValidation(t *testing.T) {
	router, _ := testRouter(t, nil)

	body, _ := json.Marshal(map[string]any{
		"current_address":  "",
		"pickup_address":   "Tucson, AZ",
		"dropoff_address":  "El Paso, TX",
		"cycle_used_hours": 10,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/trips", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestComputeTripRejectsUnknownFields(t *testing.T) {
	router, _ := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/trips",
		strings.NewReader(`{"current_address":"a","pickup_address":"b","dropoff_address":"c","cycle_used_hours":0,"bogus":1}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestComputeTripRouteUnavailable(t *testing.T) {
	router, _ := testRouter(t, domain.ErrRouteUnavailable)

	req := httptest.NewRequest(http.MethodPost, "/api/trips", computeBody(t, 10))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGetTripNotFound(t *testing.T) {
	router, _ := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/trips/missing-id", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDownloadLogsPDF(t *testing.T) {
	router, _ := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/trips", computeBody(t, 0))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))

	pdfReq := httptest.NewRequest(http.MethodGet, "/api/trips/"+created.ID+"/logs.pdf", nil)
	pdfRR := httptest.NewRecorder()
	router.ServeHTTP(pdfRR, pdfReq)

	require.Equal(t, http.StatusOK, pdfRR.Code)
	assert.Equal(t, "application/pdf", pdfRR.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(pdfRR.Body.Bytes(), []byte("%PDF")))
}

func TestHealth(t *testing.T) {
	router, _ := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}
