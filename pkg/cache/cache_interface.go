package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer, so implementations
// (Redis, in-memory) can be swapped freely in tests.
type Cache interface {
	// Get fetches a key and unmarshals it into dest.
	// found=false means a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error

	// Increment and Expire back failed-login throttling.
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}
