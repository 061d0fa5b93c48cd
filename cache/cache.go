// Package cache holds the short-TTL page cache. The contract is a plain
// (key) -> (value, expiry) store; expiry is the only invalidation there is.
package cache

import (
	"context"
	"time"
)

type Store interface {
	// Get returns the cached value, or ok=false when absent or expired.
	Get(ctx context.Context, key string) (value []byte, ok bool)
	// Set stores the value for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}
