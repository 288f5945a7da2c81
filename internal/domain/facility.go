package domain

import (
	"time"

	"github.com/google/uuid"
)

// Building groups floors and spaces. Archived buildings keep their schedules
// cycling but receive no notifications.
type Building struct {
	ID         uuid.UUID
	Name       string
	ArchivedAt *time.Time
}

// IsArchived reports whether the building has been archived.
func (b *Building) IsArchived() bool {
	return b.ArchivedAt != nil
}

// Space is a physical room or area within a building.
type Space struct {
	ID         uuid.UUID
	BuildingID uuid.UUID
	FloorID    *uuid.UUID
	Name       string
	DeletedAt  *time.Time
}

// SpaceWithStatus is the derived read model of a space. It is never persisted.
type SpaceWithStatus struct {
	SpaceID             uuid.UUID   `json:"space_id"`
	Name                string      `json:"name"`
	Status              SpaceStatus `json:"status"`
	OpenDeficiencyCount int         `json:"open_deficiency_count"`
	OpenTaskCount       int         `json:"open_task_count"`
	LastInspectedAt     *time.Time  `json:"last_inspected_at,omitempty"`
}
