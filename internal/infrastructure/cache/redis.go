package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis reports these for TTL on a missing key and on a key without expiry.
const (
	redisTTLMissing   = -2 * time.Nanosecond
	redisTTLNoExpires = -1 * time.Nanosecond
)

// RedisCache shares carrier lookups across instances.
type RedisCache struct {
	client redis.Cmdable
}

func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("redis.Get: %w", err)
	}

	return v, true, nil
}

// Set writes with SET EX. A non-positive ttl keeps the entry until deleted.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis.Del: %w", err)
	}

	return nil
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis.Exists: %w", err)
	}

	return n > 0, nil
}

func (c *RedisCache) RemainingTTL(ctx context.Context, key string) (time.Duration, bool, error) {
	ttl, err := c.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, false, fmt.Errorf("redis.TTL: %w", err)
	}

	switch ttl {
	case redisTTLMissing:
		return 0, false, nil
	case redisTTLNoExpires:
		return 0, true, nil
	default:
		return ttl, true, nil
	}
}
