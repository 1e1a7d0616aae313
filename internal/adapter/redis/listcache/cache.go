// package listcache implements the PostListCache port with Redis.
package listcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/codecommunity-2025.net/internal/core/ports/primary"
	"gitlab.com/codecommunity-2025.net/internal/core/ports/secondary"
)

const postListKeyPrefix = "posts:list:"

// Cache caches post listings with a short TTL. Everything here is
// best-effort: callers treat errors as cache misses.
type Cache struct {
	redisClient *redis.Client
	ttl         time.Duration
	logger      primary.Logger
}

var _ secondary.PostListCache = (*Cache)(nil)

// New creates a new Redis-backed post-list cache
func New(redisClient *redis.Client, ttl time.Duration, logger primary.Logger) *Cache {
	return &Cache{
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

// Get returns the cached listing for key, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]secondary.Document, error) {
	data, err := c.redisClient.Get(ctx, postListKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached listing: %w", err)
	}

	var items []secondary.Document
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached listing: %w", err)
	}
	return items, nil
}

// Set stores the listing under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, items []secondary.Document) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}
	if err := c.redisClient.Set(ctx, postListKeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache listing: %w", err)
	}
	return nil
}

// Invalidate drops every cached listing.
func (c *Cache) Invalidate(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.redisClient.Scan(ctx, cursor, postListKeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan listing keys: %w", err)
		}
		if len(keys) > 0 {
			if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete listing keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return nil
}

// Ping verifies cache connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.redisClient.Ping(ctx).Err()
}
