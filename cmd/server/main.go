package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/graphhopper"
	"trip-planner-service/internal/adapters/ors"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/platform/logging"
	"trip-planner-service/internal/platform/metrics"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, ORS, GraphHopper,
// Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewNamed(cfg.AppEnv, "trip-planner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	repo, closeDB, err := openTripStore(cfg)
	if err != nil {
		log.Fatal("open trip store", zap.Error(err))
	}
	defer closeDB()

	// Geocode cache is optional; the resolver treats a nil cache as
	// always-miss.
	var geocodeCache ports.GeocodeCache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisGeocodeCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.GeocodeCacheTTL)
		if err != nil {
			log.Fatal("connect redis geocode cache", zap.Error(err))
		}
		defer redisCache.Close()
		geocodeCache = redisCache
		log.Info("geocode cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	orsClient, err := ors.NewClient(cfg.ORSAPIKey)
	if err != nil {
		log.Fatal("create ORS client", zap.Error(err))
	}

	// GraphHopper is the optional fallback geocoder; without a key the
	// resolver fails over to nothing and reports the primary error.
	var fallback ports.Geocoder
	if cfg.GraphHopperAPIKey != "" {
		gh, err := graphhopper.NewGeocoder(cfg.GraphHopperAPIKey)
		if err != nil {
			log.Fatal("create GraphHopper geocoder", zap.Error(err))
		}
		fallback = gh
	} else {
		log.Warn("GRAPHHOPPER_API_KEY not set; geocoding has no fallback provider")
	}

	resolver, err := geocode.NewFallbackResolver(ors.NewGeocoder(orsClient), fallback, geocodeCache, log)
	if err != nil {
		log.Fatal("create geocode resolver", zap.Error(err))
	}

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Fatal("register metrics", zap.Error(err))
	}
	resolver.Metrics = collector

	planner := services.NewTripPlanner(resolver, ors.NewRouteProvider(orsClient), log)
	planner.Metrics = collector
	trips := &handlers.TripHandler{
		Planner: planner,
		Repo:    repo,
		Metrics: collector,
		Log:     log,
	}

	router := api.NewRouter(trips, collector, log)

	// Write timeout is tuned for cold-cache planning: one trip may
	// spend several provider round-trips with retry backoff.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	log.Info("server listening", zap.String("addr", srv.Addr))
	log.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

// openTripStore selects Postgres when DATABASE_URL is set, otherwise
// a local SQLite file, and makes sure the schema exists.
func openTripStore(cfg *config.Config) (ports.TripRepository, func(), error) {
	if cfg.DatabaseURL != "" {
		pgdb, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLTripRepository(pgdb), func() { _ = pgdb.Close() }, nil
	}

	sqlitedb, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite database %q: %w", cfg.DBPath, err)
	}
	if err := sqlitedb.Ping(); err != nil {
		return nil, nil, fmt.Errorf("verify sqlite connection to %q: %w", cfg.DBPath, err)
	}
	if err := repositories.InitSqliteSchema(sqlitedb); err != nil {
		return nil, nil, err
	}

	return repositories.NewSqliteTripRepository(sqlitedb), func() { _ = sqlitedb.Close() }, nil
}
