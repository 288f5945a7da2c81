package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/service/schedule/recurrence"
)

// Create registers a new enabled schedule. The first occurrence is computed
// from the current time, so a schedule never fires on the call that creates it.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*domain.InspectionSchedule, error) {
	if actor.IsSystem() {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	building, err := s.buildings.GetByID(ctx, input.BuildingID)
	if err != nil {
		return nil, fmt.Errorf("get building: %w", err)
	}
	if building.IsArchived() {
		return nil, domain.NewValidationError("building_id", "building is archived")
	}

	sched := &domain.InspectionSchedule{
		BuildingID: input.BuildingID,
		Enabled:    true,
		CreatedBy:  actor.UserID,
		UpdatedBy:  actor.Ref(),
	}
	applyFields(sched, input.Fields)
	sched.NextDueAt = recurrence.NextDue(recurrence.RuleOf(*sched), s.now())

	created, err := s.schedules.Create(ctx, sched)
	if err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	s.log.InfoContext(ctx, "schedule created",
		slog.String("schedule_id", created.ID.String()),
		slog.String("building_id", created.BuildingID.String()),
		slog.String("frequency", created.Frequency.String()),
		slog.Time("next_due_at", created.NextDueAt),
	)

	return created, nil
}

func applyFields(sched *domain.InspectionSchedule, f Fields) {
	sched.ChecklistTemplateID = f.ChecklistTemplateID
	sched.Name = f.Name
	sched.Frequency = f.Frequency
	sched.DayOfWeek = f.DayOfWeek
	sched.DayOfMonth = f.DayOfMonth
	sched.TimeOfDay = f.TimeOfDay
	sched.AssignedTo = f.AssignedTo
}
