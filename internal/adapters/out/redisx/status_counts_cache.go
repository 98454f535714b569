package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// StatusCountsCache caches the per-status parcel counts in Redis.
// Failures are logged and reported as cache misses so the read path can
// always fall back to the database.
type StatusCountsCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewStatusCountsCache creates a Redis-backed status counts cache.
// A nil logger falls back to slog.Default.
func NewStatusCountsCache(rdb *redis.Client, ttl time.Duration, log *slog.Logger) *StatusCountsCache {
	if log == nil {
		log = slog.Default()
	}
	if ttl <= 0 {
		ttl = TTLStatusCounts
	}
	return &StatusCountsCache{rdb: rdb, ttl: ttl, log: log}
}

// Get returns the cached counts, or ok=false on a miss or any Redis failure.
func (c *StatusCountsCache) Get(ctx context.Context) (map[string]int64, bool) {
	payload, err := c.rdb.Get(ctx, KeyStatusCounts).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("status counts cache read failed", "error", err)
		}
		return nil, false
	}

	var counts map[string]int64
	if err := json.Unmarshal([]byte(payload), &counts); err != nil {
		c.log.Warn("status counts cache payload is corrupt", "error", err)
		return nil, false
	}

	return counts, true
}

// Set stores the counts with the configured TTL. Failures are logged only.
func (c *StatusCountsCache) Set(ctx context.Context, counts map[string]int64) {
	payload, err := json.Marshal(counts)
	if err != nil {
		c.log.Warn("status counts cache encode failed", "error", err)
		return
	}

	if err := c.rdb.Set(ctx, KeyStatusCounts, payload, c.ttl).Err(); err != nil {
		c.log.Warn("status counts cache write failed", "error", err)
	}
}
