package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/facility-backend/internal/adapter/postgres"
	"github.com/heartmarshall/facility-backend/internal/adapter/telemetry"
	"github.com/heartmarshall/facility-backend/internal/config"
	"github.com/heartmarshall/facility-backend/internal/transport/middleware"
	"github.com/heartmarshall/facility-backend/internal/transport/rest"
)

// Run is the HTTP service entry point. It loads configuration, connects to
// the database, wires the services and serves until ctx is cancelled, then
// shuts the server down within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, cfg.Telemetry.ServiceName)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer flushTracing(shutdownTracing, logger)

	pool, err := postgres.NewPool(ctx, cfg.Database, cfg.Telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := newServices(cfg, pool, logger)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := newRouter(cfg.Server, cfg.Cron.Secret, handlers{
		health:      rest.NewHealthHandler(pool, Version, cfg.Messaging.Enabled),
		cron:        rest.NewCronHandler(svc.escalation, svc.retention, svc.reporter, logger),
		spaceStatus: rest.NewSpaceStatusHandler(svc.spaceStatus, logger),
		schedules:   rest.NewScheduleHandler(svc.schedules, logger),
	}, limiter, svc.reporter, logger)

	if cfg.Cron.Secret == "" {
		logger.Warn("cron secret is empty, trigger routes will answer 500")
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func flushTracing(shutdown telemetry.ShutdownFunc, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		logger.Warn("flush traces", slog.String("error", err.Error()))
	}
}
