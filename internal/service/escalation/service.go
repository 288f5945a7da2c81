// Package escalation holds the periodic jobs that turn elapsed time into
// notifications: overdue tasks, SLA warnings and due inspection schedules.
//
// Every job is a single synchronous pass: select candidates, let the
// dispatcher dedup and deliver, persist any state advance. A failure on one
// candidate is reported and the pass moves on; only a failed candidate query
// aborts a run.
package escalation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/service/notify"
)

const tracerName = "github.com/heartmarshall/facility-backend/internal/service/escalation"

type taskRepo interface {
	ListOverdue(ctx context.Context, now, notifiedSince time.Time, limit int) ([]domain.Task, error)
	ListAssignedDueBetween(ctx context.Context, after, until, notifiedSince time.Time, limit int) ([]domain.Task, error)
}

type scheduleRepo interface {
	ListDue(ctx context.Context, now time.Time, limit int) ([]domain.InspectionSchedule, error)
	Advance(ctx context.Context, id uuid.UUID, nextDueAt, triggeredAt time.Time, actor domain.Actor) error
}

type buildingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error)
}

type spaceRepo interface {
	CountByBuilding(ctx context.Context, buildingID uuid.UUID) (int, error)
}

type userRepo interface {
	ListBuildingManagerIDs(ctx context.Context, buildingID uuid.UUID) ([]uuid.UUID, error)
}

type notifier interface {
	Notify(ctx context.Context, req notify.Request) (notify.Outcome, error)
}

type errorReporter interface {
	CaptureException(ctx context.Context, err error, attrs ...slog.Attr)
}

// Service runs the escalation jobs.
type Service struct {
	tasks     taskRepo
	schedules scheduleRepo
	buildings buildingRepo
	spaces    spaceRepo
	users     userRepo
	notifier  notifier
	reporter  errorReporter
	policy    domain.EscalationPolicy
	tracer    trace.Tracer
	log       *slog.Logger
}

// NewService creates a new escalation Service.
func NewService(
	log *slog.Logger,
	tasks taskRepo,
	schedules scheduleRepo,
	buildings buildingRepo,
	spaces spaceRepo,
	users userRepo,
	notifier notifier,
	reporter errorReporter,
	policy domain.EscalationPolicy,
) *Service {
	return &Service{
		tasks:     tasks,
		schedules: schedules,
		buildings: buildings,
		spaces:    spaces,
		users:     users,
		notifier:  notifier,
		reporter:  reporter,
		policy:    policy,
		tracer:    otel.Tracer(tracerName),
		log:       log.With("service", "escalation"),
	}
}

// send dispatches one request and reports whether a new notification went
// out. Errors are reported, never returned.
func (s *Service) send(ctx context.Context, req notify.Request) bool {
	out, err := s.notifier.Notify(ctx, req)
	if err != nil {
		s.reporter.CaptureException(ctx, err,
			slog.String("type", req.Type.String()),
			slog.String("user_id", req.UserID.String()),
			slog.String("entity_id", req.EntityID.String()),
		)
		return false
	}
	return out.Delivered()
}

// notifiedSince is the start of the dedup window for typ. Candidates already
// notified after it are left out before the batch limit applies, so a
// backlog larger than the limit rotates instead of repeating the same head.
func (s *Service) notifiedSince(now time.Time, typ domain.NotificationType) time.Time {
	w := s.policy.DedupWindow(typ)
	if w <= 0 {
		return time.Time{}
	}
	return now.Add(-w)
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
