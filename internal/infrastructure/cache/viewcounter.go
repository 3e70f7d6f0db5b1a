package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/redis/go-redis/v9"

	"keydeals/internal/shared/logger"
)

// ViewCounter buffers deal view hits so the hot listing path never writes
// to the primary database. A background flusher drains the counter into the
// deals table periodically.
type ViewCounter interface {
	Record(ctx context.Context, dealID uint) error
	// Drain atomically takes every buffered count, leaving the counter
	// empty. Counts that fail to flush downstream are lost, which is
	// acceptable for view statistics.
	Drain(ctx context.Context) (map[uint]uint64, error)
}

const viewCounterKey = "deal:view_counts"

// RedisViewCounter implements ViewCounter on a Redis hash keyed by deal ID.
type RedisViewCounter struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisViewCounter(client *redis.Client, logger logger.Interface) *RedisViewCounter {
	return &RedisViewCounter{
		client: client,
		logger: logger,
	}
}

func (c *RedisViewCounter) Record(ctx context.Context, dealID uint) error {
	if err := c.client.HIncrBy(ctx, viewCounterKey, strconv.FormatUint(uint64(dealID), 10), 1).Err(); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

func (c *RedisViewCounter) Drain(ctx context.Context) (map[uint]uint64, error) {
	drainKey := viewCounterKey + ":draining"

	// RENAME is atomic, so hits recorded after this point land in a fresh
	// hash and are picked up by the next drain.
	if err := c.client.Rename(ctx, viewCounterKey, drainKey).Err(); err != nil {
		if err == redis.Nil || err.Error() == "ERR no such key" {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to rotate view counter: %w", err)
	}

	result, err := c.client.HGetAll(ctx, drainKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read view counter: %w", err)
	}

	if err := c.client.Del(ctx, drainKey).Err(); err != nil {
		c.logger.Warnw("failed to delete drained view counter", "error", err)
	}

	counts := make(map[uint]uint64, len(result))
	for idStr, countStr := range result {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.logger.Warnw("skipping malformed view counter field", "field", idStr)
			continue
		}
		count, err := strconv.ParseUint(countStr, 10, 64)
		if err != nil || count == 0 {
			continue
		}
		counts[uint(id)] = count
	}

	return counts, nil
}

// MemoryViewCounter is the single-process fallback used when Redis is
// disabled, and doubles as the test implementation.
type MemoryViewCounter struct {
	mu     sync.Mutex
	counts map[uint]uint64
}

func NewMemoryViewCounter() *MemoryViewCounter {
	return &MemoryViewCounter{counts: make(map[uint]uint64)}
}

func (c *MemoryViewCounter) Record(_ context.Context, dealID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[dealID]++
	return nil
}

func (c *MemoryViewCounter) Drain(_ context.Context) (map[uint]uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.counts) == 0 {
		return nil, nil
	}
	drained := c.counts
	c.counts = make(map[uint]uint64)
	return drained, nil
}
