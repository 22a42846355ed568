// Package cache provides the caching layer for Scryfall API responses:
// an in-memory LRU, an optional Redis backend, and a composite cache
// layering the two.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Cache is the common interface over the cache backends. Values are
// opaque byte slices; callers serialize with encoding/json.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Clear(ctx context.Context)
	Close() error
}

// TTLConfig holds the per-kind expirations for cached Scryfall data.
type TTLConfig struct {
	Search  time.Duration
	Card    time.Duration
	Price   time.Duration
	Set     time.Duration
	Default time.Duration
}

// DefaultTTLs returns the standard expiration policy: searches go
// stale quickly, sets almost never change.
func DefaultTTLs() TTLConfig {
	return TTLConfig{
		Search:  30 * time.Minute,
		Card:    24 * time.Hour,
		Price:   6 * time.Hour,
		Set:     7 * 24 * time.Hour,
		Default: time.Hour,
	}
}

// BuildKey derives a deterministic cache key from a namespace and
// request parameters. Long parameter strings are hashed to keep keys
// short enough for Redis.
func BuildKey(namespace string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+params[name])
	}
	joined := strings.Join(parts, "&")

	if len(joined) > 100 {
		sum := md5.Sum([]byte(joined))
		joined = hex.EncodeToString(sum[:])
	}
	return fmt.Sprintf("%s:%s", namespace, joined)
}
