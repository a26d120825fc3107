// Package redis provides a redis-backed counter store so the limit holds
// across engine instances.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a fixed-window counter store on redis INCR + EXPIRE.
type Store struct {
	client *redis.Client
}

// New creates a Store from a redis URL and verifies connectivity.
func New(ctx context.Context, url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Incr(ctx context.Context, key string, window time.Duration) (int, time.Duration, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	// NX keeps the window anchored at the first increment.
	pipe.ExpireNX(ctx, key, window)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("increment rate limit counter: %w", err)
	}
	return int(incr.Val()), ttl.Val(), nil
}

// Close closes the underlying redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
