package escalation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/service/notify"
	"github.com/heartmarshall/facility-backend/internal/service/schedule/recurrence"
)

// ScheduleSummary is the result of one schedule-trigger run.
type ScheduleSummary struct {
	Checked   int `json:"checked"`
	Triggered int `json:"triggered"`
	Notified  int `json:"notified"`
	Archived  int `json:"archived"`
}

type triggerResult struct {
	skipped  bool
	archived bool
	notified int
}

// TriggerSchedules fires every enabled schedule whose next occurrence has
// arrived. Each fired schedule is advanced to its next occurrence after now,
// whether or not anyone was notified. Schedules of archived buildings advance
// silently. A schedule whose building is gone is left untouched.
func (s *Service) TriggerSchedules(ctx context.Context, now time.Time) (ScheduleSummary, error) {
	ctx, span := s.tracer.Start(ctx, "escalation.TriggerSchedules")
	defer span.End()

	due, err := s.schedules.ListDue(ctx, now, s.policy.BatchLimit)
	if err != nil {
		failSpan(span, err)
		return ScheduleSummary{}, fmt.Errorf("list due schedules: %w", err)
	}

	sum := ScheduleSummary{Checked: len(due)}
	for i := range due {
		sched := &due[i]

		res, err := s.trigger(ctx, sched, now)
		if err != nil {
			s.reporter.CaptureException(ctx, fmt.Errorf("trigger schedule: %w", err),
				slog.String("schedule_id", sched.ID.String()),
				slog.String("building_id", sched.BuildingID.String()),
			)
			continue
		}
		if res.skipped {
			continue
		}

		sum.Triggered++
		sum.Notified += res.notified
		if res.archived {
			sum.Archived++
		}
	}

	span.SetAttributes(
		attribute.Int("escalation.checked", sum.Checked),
		attribute.Int("escalation.triggered", sum.Triggered),
		attribute.Int("escalation.notified", sum.Notified),
		attribute.Int("escalation.archived", sum.Archived),
	)
	s.log.InfoContext(ctx, "schedule trigger finished",
		slog.Int("checked", sum.Checked),
		slog.Int("triggered", sum.Triggered),
		slog.Int("notified", sum.Notified),
		slog.Int("archived", sum.Archived),
	)

	return sum, nil
}

func (s *Service) trigger(ctx context.Context, sched *domain.InspectionSchedule, now time.Time) (triggerResult, error) {
	building, err := s.buildings.GetByID(ctx, sched.BuildingID)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "schedule building missing, skipping",
			slog.String("schedule_id", sched.ID.String()),
			slog.String("building_id", sched.BuildingID.String()),
		)
		return triggerResult{skipped: true}, nil
	}
	if err != nil {
		return triggerResult{}, fmt.Errorf("get building: %w", err)
	}

	next := recurrence.NextDue(recurrence.RuleOf(*sched), now)

	if building.IsArchived() {
		if err := s.schedules.Advance(ctx, sched.ID, next, now, domain.SystemActor()); err != nil {
			return triggerResult{}, fmt.Errorf("advance schedule: %w", err)
		}
		return triggerResult{archived: true}, nil
	}

	spaces, err := s.spaces.CountByBuilding(ctx, building.ID)
	if err != nil {
		s.reporter.CaptureException(ctx, fmt.Errorf("count spaces: %w", err),
			slog.String("building_id", building.ID.String()),
		)
		spaces = -1
	}

	recipients := s.recipients(ctx, sched)
	msg := inspectionDueMessage(sched, building, spaces, now)
	link := domain.ScheduleLink(building.ID, sched.ID)

	res := triggerResult{}
	for _, userID := range recipients {
		if s.send(ctx, notify.Request{
			UserID:   userID,
			Type:     domain.NotificationTypeInspectionDue,
			Message:  msg,
			Link:     link,
			EntityID: sched.ID,
		}) {
			res.notified++
		}
	}

	if err := s.schedules.Advance(ctx, sched.ID, next, now, domain.SystemActor()); err != nil {
		return triggerResult{}, fmt.Errorf("advance schedule: %w", err)
	}

	s.log.DebugContext(ctx, "schedule triggered",
		slog.String("schedule_id", sched.ID.String()),
		slog.Int("recipients", len(recipients)),
		slog.Int("notified", res.notified),
		slog.Time("next_due_at", next),
	)

	return res, nil
}

// recipients returns the explicit assignee, or every admin and supervisor
// assigned to the building.
func (s *Service) recipients(ctx context.Context, sched *domain.InspectionSchedule) []uuid.UUID {
	if sched.AssignedTo != nil {
		return []uuid.UUID{*sched.AssignedTo}
	}

	ids, err := s.users.ListBuildingManagerIDs(ctx, sched.BuildingID)
	if err != nil {
		s.reporter.CaptureException(ctx, fmt.Errorf("list building managers: %w", err),
			slog.String("building_id", sched.BuildingID.String()),
		)
		return nil
	}
	return ids
}
