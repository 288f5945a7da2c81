package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one row of the append-only notification log. The log also
// serves as the deduplication ledger for the escalation jobs.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Message   string
	Link      string
	Read      bool
	CreatedAt time.Time
}

// TaskLink returns the in-app link for a task. It embeds the task id, which is
// what the dedup lookup matches on.
func TaskLink(taskID uuid.UUID) string {
	return "/tasks/" + taskID.String()
}

// ScheduleLink returns the in-app link for a schedule occurrence.
func ScheduleLink(buildingID, scheduleID uuid.UUID) string {
	return "/buildings/" + buildingID.String() + "/inspections/new?schedule=" + scheduleID.String()
}
