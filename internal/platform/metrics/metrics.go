package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's Prometheus metrics and provides the
// scrape handler to wire into the HTTP router.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	TripsPlanned prometheus.Counter
	GeocodeCalls *prometheus.CounterVec
	RouteCalls   *prometheus.CounterVec
}

// NewCollector registers the service metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trip_http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, path pattern, and status code.",
	}, []string{"method", "path", "code"})
	if err := reg.Register(requests); err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trip_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method", "path"})
	if err := reg.Register(durations); err != nil {
		return nil, err
	}

	trips := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trip_plans_total",
		Help: "Total number of successfully computed trip plans.",
	})
	if err := reg.Register(trips); err != nil {
		return nil, err
	}

	geocodes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trip_geocode_lookups_total",
		Help: "Geocode lookups by provider and outcome.",
	}, []string{"provider", "outcome"})
	if err := reg.Register(geocodes); err != nil {
		return nil, err
	}

	routes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trip_route_requests_total",
		Help: "Routing backend requests by outcome.",
	}, []string{"outcome"})
	if err := reg.Register(routes); err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		HTTPRequests:  requests,
		HTTPDurations: durations,
		TripsPlanned:  trips,
		GeocodeCalls:  geocodes,
		RouteCalls:    routes,
	}, nil
}

// Handler returns the /metrics scrape handler for this collector's
// gatherer.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
