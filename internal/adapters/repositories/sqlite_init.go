package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		current_address TEXT NOT NULL,
		pickup_address TEXT NOT NULL,
		dropoff_address TEXT NOT NULL,
		cycle_used_hours REAL NOT NULL,
		result TEXT NOT NULL
	);
	`

	if _, err := tx.Exec(createTripsQuery); err != nil {
		return fmt.Errorf("init schema: create trips table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}

	return nil
}
