package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"keydeals/internal/shared/logger"
)

// ListingCache holds rendered public listing pages for a short TTL so
// storefront traffic mostly bypasses the database.
type ListingCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
	// InvalidateAll drops every cached listing page; called whenever a
	// deal changes visibility.
	InvalidateAll(ctx context.Context) error
}

const listingKeyPrefix = "deal:listing:"

type RedisListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisListingCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisListingCache {
	return &RedisListingCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisListingCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, listingKeyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing from cache: %w", err)
	}
	return payload, nil
}

func (c *RedisListingCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, listingKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache listing: %w", err)
	}
	return nil
}

func (c *RedisListingCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, listingKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan listing cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate listing cache: %w", err)
	}
	c.logger.Debugw("listing cache invalidated", "keys", len(keys))
	return nil
}

// NoopListingCache disables listing caching when Redis is not configured.
type NoopListingCache struct{}

func (NoopListingCache) Get(context.Context, string) ([]byte, error) { return nil, nil }
func (NoopListingCache) Set(context.Context, string, []byte) error   { return nil }
func (NoopListingCache) InvalidateAll(context.Context) error         { return nil }
