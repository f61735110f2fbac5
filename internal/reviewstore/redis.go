// Package reviewstore counts complaints awaiting manual review per
// category, backed by redis in production and an in-memory counter
// elsewhere.
package reviewstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const reviewCounterPrefix = "triage:reviews:pending"

// categoryKey normalizes a category into its counter key so case and
// whitespace variants share one backlog.
func categoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// RedisStore counts reviews in a shared redis instance so every
// processor replica sees the same per-category backlog.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a redis-backed counter.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Incr bumps the counter for one category and returns its new value.
func (s *RedisStore) Incr(ctx context.Context, category string) (int64, error) {
	key := reviewCounterPrefix + ":" + categoryKey(category)
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr review counter: %w", err)
	}
	return count, nil
}

// Reset clears the counter for one category, typically after an
// operator drains its review queue.
func (s *RedisStore) Reset(ctx context.Context, category string) error {
	key := reviewCounterPrefix + ":" + categoryKey(category)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("reset review counter: %w", err)
	}
	return nil
}

// Ping verifies the redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}
