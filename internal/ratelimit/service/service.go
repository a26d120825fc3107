package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"workright/internal/ratelimit/models"
	"workright/internal/ratelimit/ports"
)

// Service enforces a fixed-window request limit on top of an injected
// counter store.
type Service struct {
	store  ports.CounterStore
	limit  int
	window time.Duration
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store ports.CounterStore, limit int, window time.Duration, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("counter store is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive")
	}

	svc := &Service{
		store:  store,
		limit:  limit,
		window: window,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Check consumes one token for the identifier and reports whether the request
// is within the limit. Store failures fail open: blocking the compliance API
// on a counter outage would be worse than briefly losing the limit.
func (s *Service) Check(ctx context.Context, identifier string) *models.RateLimitResult {
	count, resetIn, err := s.store.Incr(ctx, "ratelimit:"+identifier, s.window)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "rate limit store unavailable, failing open",
				"identifier", identifier,
				"error", err,
			)
		}
		return &models.RateLimitResult{Allowed: true, Limit: s.limit, Remaining: s.limit}
	}

	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}
	result := &models.RateLimitResult{
		Allowed:   count <= s.limit,
		Limit:     s.limit,
		Remaining: remaining,
	}
	if !result.Allowed {
		result.RetryAfter = int(resetIn.Round(time.Second).Seconds())
		if result.RetryAfter < 1 {
			result.RetryAfter = 1
		}
	}
	return result
}
