// Package cache stores rendered paintings keyed by their generation
// parameters.
//
// Rendering a full-size canvas takes real time (tens of thousands of
// polygon fills plus per-pixel texture work), but the output is a pure
// function of (seed, width, height, line thickness). The preview server
// uses this cache to serve repeated requests for the same parameters
// without re-rendering.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by Get when the key has no entry.
var ErrNotFound = errors.New("cache entry not found")

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get returns the cached bytes, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// RenderKey derives the cache key for a rendered painting. Format and
// parameters are both part of the key, so PNG and SVG renders of the
// same scene never collide.
func RenderKey(format string, seed int64, width, height int, lineThickness float64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d|%d|%g", format, seed, width, height, lineThickness)))
	return hex.EncodeToString(sum[:])
}
