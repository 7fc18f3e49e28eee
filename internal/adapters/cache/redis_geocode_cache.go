package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

const keyPrefix = "tripplanner:geocode:"

// RedisGeocodeCache is a Redis-backed cache mapping free-text
// addresses to resolved locations. Keys are normalized by collapsing
// whitespace so equivalent queries share an entry.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.GeocodeCache = (*RedisGeocodeCache)(nil)

func NewRedisGeocodeCache(addr, password string, db int, ttl time.Duration) (*RedisGeocodeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisGeocodeCache{client: client, ttl: ttl}, nil
}

func (c *RedisGeocodeCache) Close() error { return c.client.Close() }

func key(query string) string {
	return keyPrefix + strings.ToLower(strings.Join(strings.Fields(query), " "))
}

type cachedLocation struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

func (c *RedisGeocodeCache) Get(ctx context.Context, query string) (domain.GeocodedLocation, bool, error) {
	val, err := c.client.Get(ctx, key(query)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.GeocodedLocation{}, false, nil
	}
	if err != nil {
		return domain.GeocodedLocation{}, false, fmt.Errorf("geocode cache get: %w", err)
	}

	var entry cachedLocation
	if err := json.Unmarshal(val, &entry); err != nil {
		// A corrupt entry is a miss; the next Put overwrites it.
		return domain.GeocodedLocation{}, false, fmt.Errorf("geocode cache decode: %w", err)
	}

	return domain.GeocodedLocation{
		Coordinate: domain.Coordinate{Lat: entry.Lat, Lon: entry.Lon},
		Label:      entry.Label,
		Query:      query,
	}, true, nil
}

func (c *RedisGeocodeCache) Put(ctx context.Context, loc domain.GeocodedLocation) error {
	if strings.TrimSpace(loc.Query) == "" {
		return errors.New("geocode cache put: empty query key")
	}

	payload, err := json.Marshal(cachedLocation{Lat: loc.Lat, Lon: loc.Lon, Label: loc.Label})
	if err != nil {
		return fmt.Errorf("geocode cache encode: %w", err)
	}

	if err := c.client.Set(ctx, key(loc.Query), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("geocode cache set: %w", err)
	}
	return nil
}
