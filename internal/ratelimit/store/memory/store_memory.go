// Package memory provides an in-process counter store for single-instance
// deployments and tests.
package memory

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	count   int
	resetAt time.Time
}

// Store is a fixed-window in-memory counter store.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func New() *Store {
	return &Store{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// NewWithClock injects a clock for tests.
func NewWithClock(now func() time.Time) *Store {
	s := New()
	s.now = now
	return s
}

func (s *Store) Incr(_ context.Context, key string, window time.Duration) (int, time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &entry{resetAt: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, e.resetAt.Sub(now), nil
}
