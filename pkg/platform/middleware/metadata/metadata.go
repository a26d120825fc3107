// Package metadata provides middleware that stamps request-scoped metadata
// (request ID, request time, client IP) onto the context early in the chain.
package metadata

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"workright/pkg/requestcontext"
)

type contextKeyClientIP struct{}

// RequestMetadata assigns a request ID, captures the request time, and
// extracts the client IP. All operations within a single request then share
// one "now" and one ID for log correlation.
func RequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = requestcontext.WithRequestID(ctx, uuid.NewString())
		ctx = requestcontext.WithTime(ctx, time.Now())
		ctx = context.WithValue(ctx, contextKeyClientIP{}, ClientIPFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClientIP retrieves the client IP address from the context.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(contextKeyClientIP{}).(string); ok {
		return ip
	}
	return ""
}

// WithClientIP injects a client IP into a context.
// Useful for tests that don't run the full HTTP middleware chain.
func WithClientIP(ctx context.Context, clientIP string) context.Context {
	return context.WithValue(ctx, contextKeyClientIP{}, clientIP)
}

// ClientIPFromRequest extracts the real client IP from the request, handling
// proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs; the first is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is "ip:port" (or "[::1]:port" for IPv6).
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return addr[:idx]
		}
		return addr
	}

	return "unknown"
}
