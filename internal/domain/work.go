package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of remediation work attached to a space.
type Task struct {
	ID           uuid.UUID
	SpaceID      uuid.UUID
	DeficiencyID *uuid.UUID
	AssignedTo   *uuid.UUID
	CreatedBy    uuid.UUID
	Description  string
	Priority     TaskPriority
	Status       WorkStatus
	DueDate      *time.Time
	CreatedAt    time.Time
}

// IsOpen reports whether the task is open or in progress.
func (t *Task) IsOpen() bool {
	return t.Status.IsOpen()
}

// IsOverdue reports whether an open task has a due date strictly before now.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.IsOpen() && t.DueDate != nil && t.DueDate.Before(now)
}

// Recipients returns the users that should hear about the task: the creator
// first, then the assignee when it is a different user.
func (t *Task) Recipients() []uuid.UUID {
	ids := []uuid.UUID{t.CreatedBy}
	if t.AssignedTo != nil && *t.AssignedTo != t.CreatedBy {
		ids = append(ids, *t.AssignedTo)
	}
	return ids
}

// Deficiency is a problem found during an inspection.
type Deficiency struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	Description string
	Status      WorkStatus
	ResolvedAt  *time.Time
	CreatedAt   time.Time
}

// IsOpen reports whether the deficiency is open or in progress.
func (d *Deficiency) IsOpen() bool {
	return d.Status.IsOpen()
}
