package cache

import (
	"context"
	"fmt"
	"time"
)

// Options selects and sizes a cache backend.
type Options struct {
	Backend    string // "memory", "redis" or "composite"
	MaxSize    int
	RedisURL   string
	KeyPrefix  string
	DefaultTTL time.Duration
}

// New builds a cache from the given options. The composite backend
// needs a Redis URL; memory is the safe default.
func New(ctx context.Context, opts Options) (Cache, error) {
	if opts.MaxSize <= 0 {
		opts.MaxSize = 1000
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "scryfall:"
	}

	switch opts.Backend {
	case "", "memory":
		return NewMemory(opts.MaxSize, opts.DefaultTTL)
	case "redis":
		return NewRedis(ctx, opts.RedisURL, opts.KeyPrefix)
	case "composite":
		memory, err := NewMemory(opts.MaxSize, opts.DefaultTTL)
		if err != nil {
			return nil, err
		}
		remote, err := NewRedis(ctx, opts.RedisURL, opts.KeyPrefix)
		if err != nil {
			return nil, err
		}
		return NewComposite(memory, remote), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}

// Noop is the cache used when caching is disabled.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (Noop) Set(context.Context, string, []byte, time.Duration) {}
func (Noop) Delete(context.Context, string)                     {}
func (Noop) Clear(context.Context)                              {}
func (Noop) Close() error                                       { return nil }
