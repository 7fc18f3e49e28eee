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

// Postgres-backed implementation of the TripRepository port.
type SQLTripRepository struct{ DB *sql.DB }

var _ ports.TripRepository = (*SQLTripRepository)(nil)

func NewSQLTripRepository(db *sql.DB) *SQLTripRepository {
	return &SQLTripRepository{DB: db}
}

// Initialize the Postgres schema. Used by the dbtool command.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		current_address TEXT NOT NULL,
		pickup_address TEXT NOT NULL,
		dropoff_address TEXT NOT NULL,
		cycle_used_hours DOUBLE PRECISION NOT NULL,
		result JSONB NOT NULL
	);
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init schema: create trips table: %w", err)
	}

	return nil
}

func (s *SQLTripRepository) SaveTrip(ctx context.Context, rec domain.TripRecord) (domain.TripRecord, error) {
	if s.DB == nil {
		return domain.TripRecord{}, errors.New("sql trip repository: DB is nil")
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
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = s.DB.ExecContext(ctx, query,
		rec.ID,
		rec.CreatedAt,
		rec.UpdatedAt,
		rec.CurrentAddress,
		rec.PickupAddress,
		rec.DropoffAddress,
		rec.CycleUsedHours,
		payload,
	)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("save trip: insert trips row: %w", err)
	}

	return rec, nil
}

func (s *SQLTripRepository) GetTrip(ctx context.Context, id string) (domain.TripRecord, error) {
	if s.DB == nil {
		return domain.TripRecord{}, errors.New("sql trip repository: DB is nil")
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
	WHERE id = $1;
	`

	var rec domain.TripRecord
	var payload []byte
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
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

	if err := json.Unmarshal(payload, &rec.Plan); err != nil {
		return domain.TripRecord{}, fmt.Errorf("get trip: unmarshal plan: %w", err)
	}

	return rec, nil
}
