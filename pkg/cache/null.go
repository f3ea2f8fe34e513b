package cache

import (
	"context"
	"time"
)

// NullCache never stores anything; every Get is a miss. Used when the
// server runs without a cache directory.
type NullCache struct{}

// Get always returns ErrNotFound.
func (NullCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrNotFound
}

// Set discards the data.
func (NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (NullCache) Delete(ctx context.Context, key string) error { return nil }

var _ Cache = NullCache{}
