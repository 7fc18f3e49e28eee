package geocode

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/metrics"
	"trip-planner-service/internal/ports"
)

// FallbackResolver chains geocoding providers in priority order:
// the primary is tried first and any failure (transport error, empty
// result set, malformed response) falls through to the fallback. An
// unconfigured fallback is itself a failure of that hop, with no
// network call attempted.
//
// An optional cache sits in front of both providers. Cache write
// failures are logged and never fatal. Lookups are idempotent reads
// and safe to retry at the caller's discretion; the resolver itself
// does no retries beyond the single fallback hop.
type FallbackResolver struct {
	primary  ports.Geocoder
	fallback ports.Geocoder
	cache    ports.GeocodeCache
	log      *zap.Logger

	// Metrics is optional; when set, lookups are counted per provider.
	Metrics *metrics.Collector
}

var _ ports.Geocoder = (*FallbackResolver)(nil)

// NewFallbackResolver wires the provider chain. fallback and cache
// may be nil.
func NewFallbackResolver(primary, fallback ports.Geocoder, cache ports.GeocodeCache, log *zap.Logger) (*FallbackResolver, error) {
	if primary == nil {
		return nil, errors.New("geocode resolver: primary provider is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &FallbackResolver{
		primary:  primary,
		fallback: fallback,
		cache:    cache,
		log:      log,
	}, nil
}

func (r *FallbackResolver) Lookup(ctx context.Context, query string) (domain.GeocodedLocation, error) {
	if r.cache != nil {
		loc, ok, err := r.cache.Get(ctx, query)
		if err != nil {
			r.log.Warn("geocode cache read failed", zap.Error(err))
		} else if ok {
			r.count("cache", "hit")
			return loc, nil
		}
	}

	loc, primaryErr := r.primary.Lookup(ctx, query)
	if primaryErr == nil {
		r.count("primary", "ok")
		r.store(ctx, loc)
		return loc, nil
	}
	r.count("primary", "error")

	if r.fallback == nil {
		return domain.GeocodedLocation{}, &domain.GeocodingError{
			Query: query,
			Err:   fmt.Errorf("primary: %w (no fallback configured)", primaryErr),
		}
	}

	r.log.Info("primary geocoder failed, trying fallback",
		zap.String("query", query),
		zap.Error(primaryErr),
	)

	loc, fallbackErr := r.fallback.Lookup(ctx, query)
	if fallbackErr != nil {
		r.count("fallback", "error")
		return domain.GeocodedLocation{}, &domain.GeocodingError{
			Query: query,
			Err:   fmt.Errorf("primary: %v; fallback: %w", primaryErr, fallbackErr),
		}
	}

	r.count("fallback", "ok")
	r.store(ctx, loc)
	return loc, nil
}

func (r *FallbackResolver) count(provider, outcome string) {
	if r.Metrics != nil {
		r.Metrics.GeocodeCalls.WithLabelValues(provider, outcome).Inc()
	}
}

func (r *FallbackResolver) store(ctx context.Context, loc domain.GeocodedLocation) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Put(ctx, loc); err != nil {
		r.log.Warn("geocode cache write failed", zap.Error(err))
	}
}
