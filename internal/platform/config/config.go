package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	RateLimit RateLimit
}

// RateLimit configures the validate-endpoint rate limiter. The limiter falls
// back to an in-memory counter store when RedisURL is empty.
type RateLimit struct {
	Enabled  bool
	RedisURL string
	Limit    int
	Window   time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Rule table constants are compiled in and deliberately absent here; the
// engine carries no env-driven rule behavior.
func FromEnv() Server {
	addr := os.Getenv("WORKRIGHT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logLevel := os.Getenv("WORKRIGHT_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	limit := 60
	if v, err := strconv.Atoi(os.Getenv("WORKRIGHT_RATE_LIMIT")); err == nil && v > 0 {
		limit = v
	}

	return Server{
		Addr:     addr,
		LogLevel: logLevel,
		RateLimit: RateLimit{
			Enabled:  os.Getenv("WORKRIGHT_RATE_LIMIT_DISABLED") != "true",
			RedisURL: os.Getenv("WORKRIGHT_REDIS_URL"),
			Limit:    limit,
			Window:   time.Minute,
		},
	}
}
