package domain

import (
	"time"

	"github.com/google/uuid"
)

// InspectionSchedule is a recurring rule that asks for a building inspection.
// NextDueAt is always the next occurrence strictly after the moment it was
// last recomputed (creation, admin edit, or trigger).
type InspectionSchedule struct {
	ID                  uuid.UUID
	BuildingID          uuid.UUID
	ChecklistTemplateID *uuid.UUID
	Name                string
	Frequency           Frequency
	DayOfWeek           *int // 0 = Sunday … 6 = Saturday
	DayOfMonth          *int // 1–28
	TimeOfDay           string
	AssignedTo          *uuid.UUID
	Enabled             bool
	LastTriggeredAt     *time.Time
	NextDueAt           time.Time
	CreatedBy           uuid.UUID
	UpdatedBy           *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsDue reports whether the schedule should be picked up by the trigger job.
func (s *InspectionSchedule) IsDue(now time.Time) bool {
	return s.Enabled && !s.NextDueAt.After(now)
}
