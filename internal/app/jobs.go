package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/facility-backend/internal/adapter/postgres"
	"github.com/heartmarshall/facility-backend/internal/adapter/telemetry"
	"github.com/heartmarshall/facility-backend/internal/config"
	"github.com/heartmarshall/facility-backend/internal/service/escalation"
	"github.com/heartmarshall/facility-backend/internal/service/retention"
)

// Job names accepted by RunJobs.
const (
	JobOverdue   = "overdue"
	JobSLA       = "sla"
	JobSchedules = "schedules"
	JobRetention = "retention"
	JobAll       = "all"
)

// allJobs is the order "all" runs in.
var allJobs = []string{JobSchedules, JobOverdue, JobSLA, JobRetention}

type escalationJobs interface {
	CheckOverdue(ctx context.Context, now time.Time) (escalation.OverdueSummary, error)
	WarnSLA(ctx context.Context, now time.Time) (escalation.SLASummary, error)
	TriggerSchedules(ctx context.Context, now time.Time) (escalation.ScheduleSummary, error)
}

type retentionJob interface {
	Run(ctx context.Context, now time.Time) (retention.Summary, error)
}

type errorReporter interface {
	CaptureException(ctx context.Context, err error, attrs ...slog.Attr)
}

// ParseJobs expands a job name into the list of jobs to run.
func ParseJobs(name string) ([]string, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case JobAll:
		return append([]string(nil), allJobs...), nil
	case JobOverdue, JobSLA, JobSchedules, JobRetention:
		return []string{n}, nil
	default:
		return nil, fmt.Errorf("unknown job %q (want one of overdue, sla, schedules, retention, all)", name)
	}
}

// RunJobs is the one-shot cron entry point: it wires the services, runs the
// named job (or all of them) once and returns.
func RunJobs(ctx context.Context, name string) error {
	jobs, err := ParseJobs(name)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, cfg.Telemetry.ServiceName+"-cron")
	logger.InfoContext(ctx, "cron starting",
		slog.String("version", BuildVersion()),
		slog.Any("jobs", jobs),
	)

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer flushTracing(shutdownTracing, logger)

	pool, err := postgres.NewPool(ctx, cfg.Database, cfg.Telemetry.ServiceName+"-cron")
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := newServices(cfg, pool, logger)
	runner := newJobRunner(svc.escalation, svc.retention, svc.reporter, logger)

	return runner.run(ctx, jobs, time.Now())
}

type jobRunner struct {
	escalation escalationJobs
	retention  retentionJob
	reporter   errorReporter
	log        *slog.Logger
}

func newJobRunner(esc escalationJobs, ret retentionJob, reporter errorReporter, logger *slog.Logger) *jobRunner {
	return &jobRunner{escalation: esc, retention: ret, reporter: reporter, log: logger.With("component", "cron")}
}

// run executes jobs in order with the same clock. A failed job is reported
// and the rest still run; the returned error joins every failure.
func (r *jobRunner) run(ctx context.Context, jobs []string, now time.Time) error {
	var errs []error
	for _, job := range jobs {
		result, err := r.runOne(ctx, job, now)
		if err != nil {
			r.reporter.CaptureException(ctx, err, slog.String("job", job))
			errs = append(errs, fmt.Errorf("%s: %w", job, err))
			continue
		}
		r.log.InfoContext(ctx, "job finished", slog.String("job", job), slog.Any("result", result))
	}
	return errors.Join(errs...)
}

func (r *jobRunner) runOne(ctx context.Context, job string, now time.Time) (any, error) {
	switch job {
	case JobOverdue:
		sum, err := r.escalation.CheckOverdue(ctx, now)
		return sum, err
	case JobSLA:
		sum, err := r.escalation.WarnSLA(ctx, now)
		return sum, err
	case JobSchedules:
		sum, err := r.escalation.TriggerSchedules(ctx, now)
		return sum, err
	case JobRetention:
		sum, err := r.retention.Run(ctx, now)
		return sum, err
	default:
		return nil, fmt.Errorf("unknown job %q", job)
	}
}
