package domain

import (
	"time"

	"github.com/google/uuid"
)

// Inspection is one checklist walk of a space.
type Inspection struct {
	ID          uuid.UUID
	SpaceID     uuid.UUID
	InspectorID *uuid.UUID
	Status      InspectionStatus
	StartedAt   time.Time
	CompletedAt *time.Time
}

// CountsTowardStatus reports whether the inspection is a finished one with a
// completion timestamp.
func (i *Inspection) CountsTowardStatus() bool {
	return i.Status == InspectionStatusCompleted && i.CompletedAt != nil
}

// IsStale reports whether an in-progress inspection started before the cutoff.
func (i *Inspection) IsStale(cutoff time.Time) bool {
	return i.Status == InspectionStatusInProgress && i.StartedAt.Before(cutoff)
}
