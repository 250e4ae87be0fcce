package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// AmountCache implements ports.AmountCache using Redis. Keys are
// "<phone key>:<query>" so all entries for one phone can be dropped together.
type AmountCache struct {
	client goredis.Cmdable
	prefix string
}

// NewAmountCache creates a Redis-backed recipient-amount cache.
func NewAmountCache(client goredis.Cmdable) *AmountCache {
	return &AmountCache{
		client: client,
		prefix: keyPrefix + "amounts:",
	}
}

// Get retrieves a cached response. Returns nil, nil on a miss.
func (c *AmountCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis amount cache get: %w", err)
	}
	return val, nil
}

// Set stores a response with TTL.
func (c *AmountCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis amount cache set: %w", err)
	}
	return nil
}

// Invalidate drops every cached query for one phone key.
func (c *AmountCache) Invalidate(ctx context.Context, phoneKey string) error {
	iter := c.client.Scan(ctx, 0, c.prefix+phoneKey+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis amount cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis amount cache delete: %w", err)
	}
	return nil
}
