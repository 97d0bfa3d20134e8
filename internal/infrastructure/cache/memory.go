package cache

import (
	"context"
	"slices"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultCleanupInterval = 10 * time.Minute

// MemoryCache is an in-process cache for single-instance deployments and tests.
type MemoryCache struct {
	store *gocache.Cache
	now   func() time.Time
}

// NewMemoryCache evicts expired entries every cleanupInterval. A non-positive
// interval uses DefaultCleanupInterval.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}

	return &MemoryCache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
		now:   time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false, nil
	}

	return slices.Clone(v.([]byte)), true, nil //nolint:forcetypeassert
}

// Set stores a copy of value. A non-positive ttl keeps the entry until deleted.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}

	c.store.Set(key, slices.Clone(value), ttl)

	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}

func (c *MemoryCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := c.store.Get(key)
	return ok, nil
}

func (c *MemoryCache) RemainingTTL(_ context.Context, key string) (time.Duration, bool, error) {
	_, expiration, ok := c.store.GetWithExpiration(key)
	if !ok {
		return 0, false, nil
	}

	if expiration.IsZero() {
		return 0, true, nil
	}

	return max(expiration.Sub(c.now()), 0), true, nil
}
