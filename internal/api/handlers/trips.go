package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/metrics"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/render"
	"trip-planner-service/internal/services"
)

// TripHandler serves trip computation and retrieval. The planner does
// the work; this layer only translates requests, persists results,
// and maps the core error taxonomy onto status codes.
type TripHandler struct {
	Planner *services.TripPlanner
	Repo    ports.TripRepository
	Metrics *metrics.Collector
	Log     *zap.Logger
}

// Compute runs one full trip computation and stores the result.
// Responds 201 with the serialized plan including its new identifier.
func (h *TripHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req dto.ComputeTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(h.Log, w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(h.Log, w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	plan, err := h.Planner.PlanTrip(r.Context(), services.PlanTripRequest{
		CurrentAddress: req.CurrentAddress,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		CycleUsedHours: req.CycleUsedHours,
	})
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	rec, err := h.Repo.SaveTrip(r.Context(), domain.TripRecord{
		CurrentAddress: req.CurrentAddress,
		PickupAddress:  req.PickupAddress,
		DropoffAddress: req.DropoffAddress,
		CycleUsedHours: req.CycleUsedHours,
		Plan:           *plan,
	})
	if err != nil {
		h.Log.Error("save trip failed", zap.Error(err))
		writeError(h.Log, w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Metrics != nil {
		h.Metrics.TripsPlanned.Inc()
	}

	writeJSON(h.Log, w, r, http.StatusCreated, planResponse(rec.ID, rec.Plan))
}

// Get retrieves a previously stored trip by identifier.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.fetch(w, r)
	if !ok {
		return
	}

	res := dto.TripRecordResponse{
		ID:             rec.ID,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
		CurrentAddress: rec.CurrentAddress,
		PickupAddress:  rec.PickupAddress,
		DropoffAddress: rec.DropoffAddress,
		CycleUsedHours: rec.CycleUsedHours,
		Result:         planResponse(rec.ID, rec.Plan),
	}
	writeJSON(h.Log, w, r, http.StatusOK, res)
}

// DownloadLogsPDF renders the stored trip's daily-log sheet.
func (h *TripHandler) DownloadLogsPDF(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.fetch(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "eld-logs-"+rec.ID+".pdf"))

	if err := render.LogSheet(w, rec); err != nil {
		h.Log.Error("render log sheet failed", zap.String("trip_id", rec.ID), zap.Error(err))
	}
}

func (h *TripHandler) fetch(w http.ResponseWriter, r *http.Request) (domain.TripRecord, bool) {
	id := r.PathValue("id")
	if id == "" {
		writeError(h.Log, w, r, http.StatusBadRequest, "trip id is required")
		return domain.TripRecord{}, false
	}

	rec, err := h.Repo.GetTrip(r.Context(), id)
	if errors.Is(err, ports.ErrTripNotFound) {
		writeError(h.Log, w, r, http.StatusNotFound, "trip not found")
		return domain.TripRecord{}, false
	}
	if err != nil {
		h.Log.Error("get trip failed", zap.String("trip_id", id), zap.Error(err))
		writeError(h.Log, w, r, http.StatusInternalServerError, "internal server error")
		return domain.TripRecord{}, false
	}

	return rec, true
}

func (h *TripHandler) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalid *domain.InvalidInputError
		geo     *domain.GeocodingError
	)

	switch {
	case errors.As(err, &invalid):
		writeError(h.Log, w, r, http.StatusBadRequest, invalid.Error())
	case errors.As(err, &geo):
		writeError(h.Log, w, r, http.StatusUnprocessableEntity, fmt.Sprintf("could not resolve address %q", geo.Query))
	case errors.Is(err, domain.ErrRouteUnavailable):
		writeError(h.Log, w, r, http.StatusBadGateway, "no route available between the given locations")
	default:
		h.Log.Error("plan trip failed", zap.Error(err))
		writeError(h.Log, w, r, http.StatusInternalServerError, "internal server error")
	}
}

func planResponse(id string, plan domain.TripPlan) dto.TripPlanResponse {
	geometry := make([][]float64, 0, len(plan.RouteGeometry))
	for _, c := range plan.RouteGeometry {
		geometry = append(geometry, []float64{c.Lat, c.Lon})
	}

	stops := make([]dto.FuelStopResponse, 0, len(plan.FuelStops))
	for _, s := range plan.FuelStops {
		stops = append(stops, dto.FuelStopResponse{
			ID:                s.ID,
			Lat:               s.Coordinate.Lat,
			Lon:               s.Coordinate.Lon,
			DistanceFromStart: s.DistanceFromStartMiles,
			Address:           s.Address,
		})
	}

	logs := make([]dto.DailyLogResponse, 0, len(plan.DailyLogs))
	for _, e := range plan.DailyLogs {
		logs = append(logs, dto.DailyLogResponse{
			Day:          e.Day,
			DriveHours:   e.DriveHours,
			OnDutyHours:  e.OnDutyHours,
			OffDutyHours: e.OffDutyHours,
			Miles:        e.Miles,
			Notes:        e.Notes,
			IsRestDay:    e.IsRestDay,
		})
	}

	return dto.TripPlanResponse{
		ID:                  id,
		RouteGeometry:       geometry,
		TotalMiles:          plan.TotalMiles,
		TotalHours:          plan.TotalHours,
		TotalDays:           plan.TotalDays,
		CycleHoursRemaining: plan.CycleHoursRemaining,
		FuelStops:           stops,
		DailyLogs:           logs,
		CurrentLocation:     location(plan.CurrentLocation),
		PickupLocation:      location(plan.PickupLocation),
		DropoffLocation:     location(plan.DropoffLocation),
	}
}

func location(loc domain.GeocodedLocation) dto.LocationResponse {
	return dto.LocationResponse{DisplayName: loc.Label, Lat: loc.Lat, Lon: loc.Lon}
}
