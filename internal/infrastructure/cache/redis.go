package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evaly/backend/internal/domain"
)

// RedisCache is a CacheRepository backed by Redis. Values are stored as JSON
// strings with Redis-managed expiry.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed cache from a redis:// URL
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	return &RedisCache{client: redis.NewClient(opts)}, nil
}

// Ping verifies the Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get retrieves a value from the cache, decoding it into dest
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	payload, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ErrCacheMiss
		}
		return fmt.Errorf("redis get: %w", err)
	}

	return json.Unmarshal([]byte(payload), dest)
}

// Set stores a value in the cache with TTL
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Exists checks if a key exists in the cache
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

// Close releases the underlying Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
