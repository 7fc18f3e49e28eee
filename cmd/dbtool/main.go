package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/platform/db"
)

// dbtool initializes the Postgres schema for deployments that use
// DATABASE_URL instead of the default local SQLite store.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pgdb, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pgdb.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitSQLSchema(context.Background(), pgdb); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
