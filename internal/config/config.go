package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings, read from environment variables.
// Provider credentials are carried here and handed to constructors
// explicitly; nothing reads them from ambient process state later.
type Config struct {
	AppEnv string
	Port   string

	// SQLite is the default local store. Setting DatabaseURL switches
	// trip persistence to Postgres.
	DBPath      string
	DatabaseURL string

	ORSAPIKey         string
	GraphHopperAPIKey string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	GeocodeCacheTTL time.Duration

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load() (*Config, error) {
	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		return nil, fmt.Errorf("ORS_API_KEY environment variable is required")
	}

	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		DBPath:      getEnv("DB_PATH", "data/app.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		ORSAPIKey:         orsKey,
		GraphHopperAPIKey: os.Getenv("GRAPHHOPPER_API_KEY"),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getIntEnv("REDIS_DB", 0),
		GeocodeCacheTTL: getDurationEnv("GEOCODE_CACHE_TTL", 24*time.Hour),

		ReadTimeout:  getDurationEnv("READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getDurationEnv("WRITE_TIMEOUT", 120*time.Second),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
