package api

import (
	"net/http"

	"go.uber.org/zap"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/platform/metrics"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters). collector may be nil in tests.
func NewRouter(trips *handlers.TripHandler, collector *metrics.Collector, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("POST /api/trips", trips.Compute)
	mux.HandleFunc("GET /api/trips/{id}", trips.Get)
	mux.HandleFunc("GET /api/trips/{id}/logs.pdf", trips.DownloadLogsPDF)

	if collector != nil {
		mux.Handle("GET /metrics", collector.Handler())
	}

	return observeMiddleware(log, collector, mux)
}
