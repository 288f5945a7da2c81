package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/facility-backend/internal/adapter/postgres"
	"github.com/heartmarshall/facility-backend/internal/adapter/postgres/building"
	"github.com/heartmarshall/facility-backend/internal/adapter/postgres/deficiency"
	"github.com/heartmarshall/facility-backend/internal/adapter/postgres/inspection"
	"github.com/heartmarshall/facility-backend/internal/adapter/postgres/notification"
	"github.com/heartmarshall/facility-backend/internal/adapter/postgres/schedule"
	"github.com/heartmarshall/facility-backend/internal/adapter/postgres/space"
	"github.com/heartmarshall/facility-backend/internal/adapter/postgres/task"
	"github.com/heartmarshall/facility-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/facility-backend/internal/adapter/provider/twilio"
	"github.com/heartmarshall/facility-backend/internal/adapter/telemetry"
	"github.com/heartmarshall/facility-backend/internal/config"
	"github.com/heartmarshall/facility-backend/internal/service/escalation"
	"github.com/heartmarshall/facility-backend/internal/service/notify"
	"github.com/heartmarshall/facility-backend/internal/service/retention"
	schedulesvc "github.com/heartmarshall/facility-backend/internal/service/schedule"
	"github.com/heartmarshall/facility-backend/internal/service/spacestatus"
)

// services is the wired object graph shared by the HTTP server and the
// one-shot cron command.
type services struct {
	reporter    *telemetry.Reporter
	spaceStatus *spacestatus.Service
	schedules   *schedulesvc.Service
	escalation  *escalation.Service
	retention   *retention.Service
}

func newServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *services {
	txm := postgres.NewTxManager(pool)

	buildingRepo := building.New(pool)
	spaceRepo := space.New(pool)
	inspectionRepo := inspection.New(pool)
	deficiencyRepo := deficiency.New(pool)
	taskRepo := task.New(pool)
	userRepo := user.New(pool)
	scheduleRepo := schedule.New(pool)
	notificationRepo := notification.New(pool)

	reporter := telemetry.NewReporter(logger)
	policy := cfg.EscalationPolicy()

	var dispatcher *notify.Dispatcher
	if cfg.Messaging.Enabled {
		dispatcher = notify.NewDispatcher(logger, notificationRepo, userRepo, twilio.New(cfg.Messaging, logger), reporter, policy)
	} else {
		logger.Info("messaging disabled, notifications are in-app only")
		dispatcher = notify.NewDispatcher(logger, notificationRepo, userRepo, nil, reporter, policy)
	}

	return &services{
		reporter:    reporter,
		spaceStatus: spacestatus.NewService(logger, buildingRepo, spaceRepo, inspectionRepo, deficiencyRepo, taskRepo,
			spacestatus.WithTxCheck(postgres.InTx)),
		schedules:   schedulesvc.NewService(logger, scheduleRepo, buildingRepo, txm),
		escalation: escalation.NewService(
			logger,
			taskRepo,
			scheduleRepo,
			buildingRepo,
			spaceRepo,
			userRepo,
			dispatcher,
			reporter,
			policy,
		),
		retention: retention.NewService(logger, spaceRepo, inspectionRepo, cfg.Retention.RetentionPolicy()),
	}
}
