// Package cache provides a byte-value TTL cache used to keep channel page
// HTML between runs so repeated crawls within the TTL skip the bootstrap
// fetch.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
