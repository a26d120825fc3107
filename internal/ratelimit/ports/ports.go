// Package ports defines the storage interface for the ratelimit module.
//
// Rate limiting is deliberately kept out of the compliance engine: the
// evaluator stays pure while this module owns the stateful counter behind an
// injected interface, so the store can be swapped (memory for tests, redis
// for multi-instance deployments) without touching callers.
package ports

import (
	"context"
	"time"
)

// CounterStore is a key-value counter with per-key TTL.
type CounterStore interface {
	// Incr increments the counter for key, starting the window on first
	// increment. It returns the new count and the time remaining until the
	// window resets.
	Incr(ctx context.Context, key string, window time.Duration) (count int, resetIn time.Duration, err error)
}
