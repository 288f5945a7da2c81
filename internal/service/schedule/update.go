package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/service/schedule/recurrence"
)

// Update replaces the editable fields of a schedule and recomputes its next
// occurrence from the current time. The enabled flag is left untouched.
func (s *Service) Update(ctx context.Context, actor domain.Actor, input UpdateInput) (*domain.InspectionSchedule, error) {
	if actor.IsSystem() {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, actor, input.ScheduleID, "schedule updated", true, func(sched *domain.InspectionSchedule) bool {
		applyFields(sched, input.Fields)
		sched.NextDueAt = recurrence.NextDue(recurrence.RuleOf(*sched), s.now())
		return true
	})
}

// Enable turns a disabled schedule back on. Its next occurrence is recomputed
// so that occurrences missed while disabled are not fired retroactively.
// Enabling an enabled schedule is a no-op.
func (s *Service) Enable(ctx context.Context, actor domain.Actor, scheduleID uuid.UUID) (*domain.InspectionSchedule, error) {
	if actor.IsSystem() {
		return nil, domain.ErrUnauthorized
	}
	if scheduleID == uuid.Nil {
		return nil, domain.NewValidationError("schedule_id", "required")
	}

	return s.mutate(ctx, actor, scheduleID, "schedule enabled", true, func(sched *domain.InspectionSchedule) bool {
		if sched.Enabled {
			return false
		}
		sched.Enabled = true
		sched.NextDueAt = recurrence.NextDue(recurrence.RuleOf(*sched), s.now())
		return true
	})
}

// Disable stops a schedule from being picked up by the trigger job.
// Disabling a disabled schedule is a no-op.
func (s *Service) Disable(ctx context.Context, actor domain.Actor, scheduleID uuid.UUID) (*domain.InspectionSchedule, error) {
	if actor.IsSystem() {
		return nil, domain.ErrUnauthorized
	}
	if scheduleID == uuid.Nil {
		return nil, domain.NewValidationError("schedule_id", "required")
	}

	return s.mutate(ctx, actor, scheduleID, "schedule disabled", false, func(sched *domain.InspectionSchedule) bool {
		if !sched.Enabled {
			return false
		}
		sched.Enabled = false
		return true
	})
}

// mutate loads the schedule, applies change and persists it in one
// transaction. change reports whether anything needs to be written. With
// liveBuilding set, a change to a schedule of an archived building is refused.
func (s *Service) mutate(
	ctx context.Context,
	actor domain.Actor,
	scheduleID uuid.UUID,
	logMsg string,
	liveBuilding bool,
	change func(sched *domain.InspectionSchedule) bool,
) (*domain.InspectionSchedule, error) {
	var result *domain.InspectionSchedule
	changed := false

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sched, err := s.schedules.GetByID(txCtx, scheduleID)
		if err != nil {
			return fmt.Errorf("get schedule: %w", err)
		}

		if !change(sched) {
			result = sched
			return nil
		}
		if liveBuilding {
			building, err := s.buildings.GetByID(txCtx, sched.BuildingID)
			if err != nil {
				return fmt.Errorf("get building: %w", err)
			}
			if building.IsArchived() {
				return domain.NewValidationError("building_id", "building is archived")
			}
		}
		changed = true
		sched.UpdatedBy = actor.Ref()

		result, err = s.schedules.Update(txCtx, sched)
		if err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.log.InfoContext(ctx, logMsg,
			slog.String("schedule_id", scheduleID.String()),
			slog.String("actor_id", actor.UserID.String()),
			slog.Bool("enabled", result.Enabled),
			slog.Time("next_due_at", result.NextDueAt),
		)
	}

	return result, nil
}
