package cache

import (
	"context"
	"time"

	"foodtrucks-api/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache is a read-through response cache backed by Redis. A nil *Cache is
// valid and disables caching, so callers never branch on configuration.
// Cache failures degrade to a miss; they never surface to the caller.
type Cache struct {
	rc  *redis.Client
	ttl time.Duration
}

// New returns a cache over the Redis at addr, or nil when addr is empty.
func New(addr string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cache{
		rc:  redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// Get returns the cached body for key, if present.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	b, err := c.rc.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		metrics.CacheMissesTotal.Inc()
		return nil, false
	}

	metrics.CacheHitsTotal.Inc()
	return b, true
}

// Set stores body under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, body []byte) {
	if c == nil {
		return
	}

	if err := c.rc.Set(ctx, key, body, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
