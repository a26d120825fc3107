package middleware

import (
	"context"
	"net/http"
	"strconv"

	"workright/internal/ratelimit/models"
	"workright/pkg/platform/httputil"
	"workright/pkg/platform/middleware/metadata"
)

// Checker is the slice of the ratelimit service the middleware needs.
type Checker interface {
	Check(ctx context.Context, identifier string) *models.RateLimitResult
}

// RateLimit enforces the per-client request limit, keyed by client IP.
func RateLimit(checker Checker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			result := checker.Check(ctx, metadata.GetClientIP(ctx))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

			if !result.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
				httputil.WriteJSON(w, http.StatusTooManyRequests, models.RateLimitExceededResponse{
					Error:      "rate_limit_exceeded",
					Message:    "Too many requests. Please retry later.",
					RetryAfter: result.RetryAfter,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
