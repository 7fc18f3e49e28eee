package api

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"trip-planner-service/internal/platform/metrics"
)

// statusWriter captures the final HTTP status code and number of bytes
// written. This helps distinguish "handler returned 200" from "client
// received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling
// WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// observeMiddleware logs end-to-end request duration and response size
// and feeds the Prometheus collector. The metrics path label uses the
// matched route pattern, not the raw URL, to keep cardinality bounded.
func observeMiddleware(log *zap.Logger, collector *metrics.Collector, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		duration := time.Since(start)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.RequestURI()),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration("dur", duration),
		)

		if collector != nil {
			pattern := r.Pattern
			if pattern == "" {
				pattern = "unmatched"
			}
			collector.HTTPRequests.WithLabelValues(r.Method, pattern, strconv.Itoa(sw.status)).Inc()
			collector.HTTPDurations.WithLabelValues(r.Method, pattern).Observe(duration.Seconds())
		}
	})
}
