package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func newTestCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()

	srv := miniredis.RunT(t)
	c, err := NewRedisGeocodeCache(srv.Addr(), "", 0, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	loc := domain.GeocodedLocation{
		Coordinate: domain.Coordinate{Lat: 33.4484, Lon: -112.074},
		Label:      "Phoenix, AZ, USA",
		Query:      "Phoenix, AZ",
	}
	require.NoError(t, c.Put(ctx, loc))

	got, ok, err := c.Get(ctx, "Phoenix, AZ")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, loc, got)
}

func TestRedisGeocodeCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get(context.Background(), "unseen address")
	require.NoError(t, err)
	assert.False(t, ok)
}

// Queries differing only in whitespace or case share a cache entry.
func TestRedisGeocodeCacheNormalizesKeys(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	loc := domain.GeocodedLocation{
		Coordinate: domain.Coordinate{Lat: 32.22, Lon: -110.97},
		Label:      "Tucson, AZ, USA",
		Query:      "Tucson,  AZ",
	}
	require.NoError(t, c.Put(ctx, loc))

	got, ok, err := c.Get(ctx, "tucson, az")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Tucson, AZ, USA", got.Label)
}

func TestRedisGeocodeCacheRejectsEmptyQuery(t *testing.T) {
	c := newTestCache(t)
	err := c.Put(context.Background(), domain.GeocodedLocation{Query: "   "})
	assert.Error(t, err)
}
