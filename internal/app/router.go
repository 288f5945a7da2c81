package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/facility-backend/internal/adapter/telemetry"
	"github.com/heartmarshall/facility-backend/internal/config"
	"github.com/heartmarshall/facility-backend/internal/transport/middleware"
	"github.com/heartmarshall/facility-backend/internal/transport/rest"
)

type handlers struct {
	health      *rest.HealthHandler
	cron        *rest.CronHandler
	spaceStatus *rest.SpaceStatusHandler
	schedules   *rest.ScheduleHandler
}

// newRouter mounts the probes without auth and every cron and internal route
// behind the rate limiter and the shared secret.
func newRouter(
	cfg config.ServerConfig,
	secret string,
	h handlers,
	limiter *middleware.RateLimiter,
	reporter *telemetry.Reporter,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger, reporter),
	)

	r.Get("/live", h.health.Live)
	r.Get("/ready", h.health.Ready)
	r.Get("/health", h.health.Health)

	guard := middleware.Chain(
		limiter.Limit(cfg.TriggerRateLimit),
		middleware.RequireSecret(secret, logger),
	)

	r.Route("/cron", func(r chi.Router) {
		r.Use(guard)
		for path, fn := range map[string]http.HandlerFunc{
			"/overdue-tasks":        h.cron.OverdueTasks,
			"/sla-warnings":         h.cron.SLAWarnings,
			"/inspection-schedules": h.cron.InspectionSchedules,
			"/retention":            h.cron.Retention,
		} {
			r.Get(path, fn)
			r.Post(path, fn)
		}
	})

	r.Route("/internal", func(r chi.Router) {
		r.Use(guard, middleware.ActingUser())
		r.Get("/buildings/{buildingID}/space-status", h.spaceStatus.BuildingStatuses)
		r.Post("/schedules", h.schedules.Create)
		r.Put("/schedules/{scheduleID}", h.schedules.Update)
		r.Post("/schedules/{scheduleID}/enable", h.schedules.Enable)
		r.Post("/schedules/{scheduleID}/disable", h.schedules.Disable)
	})

	return r
}
