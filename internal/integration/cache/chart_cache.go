// Package cache implements the cache adapters on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spendview/backend/internal/application/adapter"
)

// chartCache implements the adapter.ChartCache interface on Redis.
type chartCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewChartCache creates a new chart cache instance.
func NewChartCache(client *redis.Client, ttl time.Duration) adapter.ChartCache {
	return &chartCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cached chart payload by key.
func (c *chartCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, adapter.ErrCacheMiss
		}
		return nil, err
	}
	return payload, nil
}

// Set stores a chart payload under the key with the configured TTL.
func (c *chartCache) Set(ctx context.Context, key string, payload []byte) error {
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}
