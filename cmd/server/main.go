package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"workright/internal/compliance/evaluator"
	compliancehandler "workright/internal/compliance/handler"
	"workright/internal/compliance/metrics"
	eligibilityhandler "workright/internal/eligibility/handler"
	"workright/internal/platform/config"
	"workright/internal/platform/httpserver"
	"workright/internal/platform/logger"
	ratelimitmw "workright/internal/ratelimit/middleware"
	"workright/internal/ratelimit/ports"
	ratelimitsvc "workright/internal/ratelimit/service"
	memorystore "workright/internal/ratelimit/store/memory"
	redisstore "workright/internal/ratelimit/store/redis"
	"workright/pkg/platform/middleware/metadata"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. The rule engine itself lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(logger.ParseLevel(cfg.LogLevel))

	complianceMetrics := metrics.New()
	evalService := evaluator.New(
		evaluator.WithLogger(log),
		evaluator.WithMetrics(complianceMetrics),
	)

	var limiter *ratelimitsvc.Service
	if cfg.RateLimit.Enabled {
		var closeStore func() error
		var err error
		limiter, closeStore, err = buildRateLimiter(cfg.RateLimit, log)
		if err != nil {
			log.Error("failed to build rate limiter", "error", err)
			os.Exit(1)
		}
		if closeStore != nil {
			defer func() { _ = closeStore() }()
		}
	}

	router := chi.NewRouter()
	router.Use(metadata.RequestMetadata)

	router.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(ratelimitmw.RateLimit(limiter))
		}
		compliancehandler.New(evalService, log).Register(r)
		eligibilityhandler.New(log).Register(r)
	})

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting workright compliance engine", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// buildRateLimiter selects the counter store (redis when configured, memory
// otherwise) and wraps it in the ratelimit service.
func buildRateLimiter(cfg config.RateLimit, log *slog.Logger) (*ratelimitsvc.Service, func() error, error) {
	var store ports.CounterStore
	var closeStore func() error

	if cfg.RedisURL != "" {
		rs, err := redisstore.New(context.Background(), cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		store = rs
		closeStore = rs.Close
	} else {
		store = memorystore.New()
	}

	svc, err := ratelimitsvc.New(store, cfg.Limit, cfg.Window, ratelimitsvc.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	return svc, closeStore, nil
}
