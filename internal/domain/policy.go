package domain

import "time"

// EscalationPolicy holds the tunables of the escalation jobs and the
// notification dedup windows.
type EscalationPolicy struct {
	OverdueDedupWindow       time.Duration
	SLADedupWindow           time.Duration
	InspectionDueDedupWindow time.Duration
	// SLAWindow is how far ahead of a due date an assignee is warned.
	SLAWindow time.Duration
	// BatchLimit caps the candidates one job run selects. Zero means no cap.
	BatchLimit int
}

// DefaultEscalationPolicy returns the stock windows: 1h for overdue, 4h for
// SLA warnings and inspection reminders, a 4h SLA horizon, no batch cap.
func DefaultEscalationPolicy() EscalationPolicy {
	return EscalationPolicy{
		OverdueDedupWindow:       time.Hour,
		SLADedupWindow:           4 * time.Hour,
		InspectionDueDedupWindow: 4 * time.Hour,
		SLAWindow:                4 * time.Hour,
	}
}

// DedupWindow returns how long a notification of the given type suppresses
// a repeat for the same user and entity.
func (p EscalationPolicy) DedupWindow(t NotificationType) time.Duration {
	switch t {
	case NotificationTypeTaskOverdue:
		return p.OverdueDedupWindow
	case NotificationTypeSLAWarning:
		return p.SLADedupWindow
	case NotificationTypeInspectionDue:
		return p.InspectionDueDedupWindow
	default:
		return 0
	}
}

// RetentionPolicy holds the thresholds of the retention sweep.
type RetentionPolicy struct {
	// SpaceRetention is how long a soft-deleted space is kept before purge.
	SpaceRetention time.Duration
	// InspectionStaleAfter is how long an inspection may stay in progress.
	InspectionStaleAfter time.Duration
}

// DefaultRetentionPolicy returns 30 days for spaces and 4 hours for inspections.
func DefaultRetentionPolicy() RetentionPolicy {
	return RetentionPolicy{
		SpaceRetention:       30 * 24 * time.Hour,
		InspectionStaleAfter: 4 * time.Hour,
	}
}
