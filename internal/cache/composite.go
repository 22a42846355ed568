package cache

import (
	"context"
	"time"
)

// Composite layers a fast local cache (L1) over a shared one (L2).
// Reads promote L2 hits into L1; writes and deletes go to both.
type Composite struct {
	l1 Cache
	l2 Cache
}

func NewComposite(l1, l2 Cache) *Composite {
	return &Composite{l1: l1, l2: l2}
}

func (c *Composite) Get(ctx context.Context, key string) ([]byte, bool) {
	if value, ok := c.l1.Get(ctx, key); ok {
		return value, true
	}
	if value, ok := c.l2.Get(ctx, key); ok {
		c.l1.Set(ctx, key, value, 0)
		return value, true
	}
	return nil, false
}

func (c *Composite) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.l1.Set(ctx, key, value, ttl)
	c.l2.Set(ctx, key, value, ttl)
}

func (c *Composite) Delete(ctx context.Context, key string) {
	c.l1.Delete(ctx, key)
	c.l2.Delete(ctx, key)
}

func (c *Composite) Clear(ctx context.Context) {
	c.l1.Clear(ctx)
	c.l2.Clear(ctx)
}

func (c *Composite) Close() error {
	err := c.l1.Close()
	if err2 := c.l2.Close(); err == nil {
		err = err2
	}
	return err
}
