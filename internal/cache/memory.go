package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiration
}

// Memory is an in-process LRU cache with per-entry TTLs. It is safe
// for concurrent use.
type Memory struct {
	entries    *lru.Cache[string, memoryEntry]
	defaultTTL time.Duration
	now        func() time.Time
}

// NewMemory creates a memory cache holding at most maxSize entries.
// Entries written without an explicit TTL expire after defaultTTL; a
// zero defaultTTL disables expiration for them.
func NewMemory(maxSize int, defaultTTL time.Duration) (*Memory, error) {
	entries, err := lru.New[string, memoryEntry](maxSize)
	if err != nil {
		return nil, err
	}
	return &Memory{entries: entries, defaultTTL: defaultTTL, now: time.Now}, nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	entry, ok := m.entries.Get(key)
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.entries.Remove(key)
		return nil, false
	}
	return entry.value, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.entries.Add(key, entry)
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.entries.Remove(key)
}

func (m *Memory) Clear(_ context.Context) {
	m.entries.Purge()
}

func (m *Memory) Close() error {
	return nil
}

// Len returns the number of entries, including any not yet evicted
// after expiring.
func (m *Memory) Len() int {
	return m.entries.Len()
}
