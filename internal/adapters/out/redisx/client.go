// Package redisx provides the Redis-backed caches of the read side.
package redisx

import (
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// KeyStatusCounts holds the JSON-encoded per-status parcel counts.
	KeyStatusCounts = "parcels:status_counts"
)

// TTLStatusCounts bounds how stale the dashboard tiles may get.
var TTLStatusCounts = 5 * time.Minute

// New creates a Redis client for the given address.
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
