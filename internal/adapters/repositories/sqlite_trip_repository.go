package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// SQLite-backed implementation of the TripRepository port. The
// computed plan is stored as a JSON blob alongside the raw inputs,
// mirroring the record shape consumers read back verbatim.
type SqliteTripRepository struct{ DB *sql.DB }

var _ ports.TripRepository = (*SqliteTripRepository)(nil)

func NewSqliteTripRepository(db *sql.DB) *SqliteTripRepository {
	return &SqliteTripRepository{DB: db}
}

func (s *SqliteTripRepository) SaveTrip(ctx context.Context, rec domain.TripRecord) (domain.TripRecord, error) {
	if s.DB == nil {
		return domain.TripRecord{}, errors.New("sqlite trip repository: DB is nil")
	}

	rec.ID = uuid.NewString()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	payload, err := json.Marshal(rec.Plan)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("save trip: marshal plan: %w", err)
	}

	query := `
	INSERT INTO trips (
		id,
		created_at,
		updated_at,
		current_address,
		pickup_address,
		dropoff_address,
		cycle_used_hours,
		result
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.UpdatedAt.Format(time.RFC3339Nano),
		rec.CurrentAddress,
		rec.PickupAddress,
		rec.DropoffAddress,
		rec.CycleUsedHours,
		string(payload),
	)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("save trip: insert trips row: %w", err)
	}

	return rec, nil
}

func (s *SqliteTripRepository) GetTrip(ctx context.Context, id string) (domain.TripRecord, error) {
	if s.DB == nil {
		return domain.TripRecord{}, errors.New("sqlite trip repository: DB is nil")
	}

	query := `
	SELECT
		id,
		created_at,
		updated_at,
		current_address,
		pickup_address,
		dropoff_address,
		cycle_used_hours,
		result
	FROM trips
	WHERE id = ?;
	`

	var rec domain.TripRecord
	var createdAt, updatedAt, payload string
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&createdAt,
		&updatedAt,
		&rec.CurrentAddress,
		&rec.PickupAddress,
		&rec.DropoffAddress,
		&rec.CycleUsedHours,
		&payload,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TripRecord{}, ports.ErrTripNotFound
	}
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("get trip: query trips row: %w", err)
	}

	if rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return domain.TripRecord{}, fmt.Errorf("get trip: parse created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return domain.TripRecord{}, fmt.Errorf("get trip: parse updated_at: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &rec.Plan); err != nil {
		return domain.TripRecord{}, fmt.Errorf("get trip: unmarshal plan: %w", err)
	}

	return rec, nil
}
