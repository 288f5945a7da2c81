package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/facility-backend/internal/service/escalation"
	"github.com/heartmarshall/facility-backend/internal/service/retention"
)

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

// CronHandler exposes the periodic jobs to an external scheduler. Every
// endpoint runs one synchronous pass and answers with its summary.
type CronHandler struct {
	escalation escalationJobs
	retention  retentionJob
	reporter   errorReporter
	now        func() time.Time
	log        *slog.Logger
}

// NewCronHandler creates a CronHandler.
func NewCronHandler(escalation escalationJobs, retention retentionJob, reporter errorReporter, logger *slog.Logger) *CronHandler {
	return &CronHandler{
		escalation: escalation,
		retention:  retention,
		reporter:   reporter,
		now:        time.Now,
		log:        logger.With("handler", "cron"),
	}
}

type cronResponse struct {
	Job    string    `json:"job"`
	RanAt  time.Time `json:"ran_at"`
	Result any       `json:"result"`
	Error  string    `json:"error,omitempty"`
}

// OverdueTasks handles GET|POST /cron/overdue-tasks.
func (h *CronHandler) OverdueTasks(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "overdue-tasks", func(ctx context.Context, now time.Time) (any, error) {
		sum, err := h.escalation.CheckOverdue(ctx, now)
		return sum, err
	})
}

// SLAWarnings handles GET|POST /cron/sla-warnings.
func (h *CronHandler) SLAWarnings(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "sla-warnings", func(ctx context.Context, now time.Time) (any, error) {
		sum, err := h.escalation.WarnSLA(ctx, now)
		return sum, err
	})
}

// InspectionSchedules handles GET|POST /cron/inspection-schedules.
func (h *CronHandler) InspectionSchedules(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "inspection-schedules", func(ctx context.Context, now time.Time) (any, error) {
		sum, err := h.escalation.TriggerSchedules(ctx, now)
		return sum, err
	})
}

// Retention handles GET|POST /cron/retention.
func (h *CronHandler) Retention(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, "retention", func(ctx context.Context, now time.Time) (any, error) {
		sum, err := h.retention.Run(ctx, now)
		return sum, err
	})
}

// run executes one job pass. A failed pass is captured and answered with 500
// together with whatever partial summary the job produced.
func (h *CronHandler) run(w http.ResponseWriter, r *http.Request, job string, fn func(ctx context.Context, now time.Time) (any, error)) {
	ctx := r.Context()
	now := h.now()

	result, err := fn(ctx, now)
	if err != nil {
		h.reporter.CaptureException(ctx, err, slog.String("job", job))
		writeJSON(w, http.StatusInternalServerError, cronResponse{
			Job:    job,
			RanAt:  now,
			Result: result,
			Error:  "job failed",
		})
		return
	}

	h.log.InfoContext(ctx, "cron job finished", slog.String("job", job))
	writeJSON(w, http.StatusOK, cronResponse{Job: job, RanAt: now, Result: result})
}
