package domain

// Frequency is the recurrence rule of an inspection schedule.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// TaskPriority ranks how urgent a remediation task is.
type TaskPriority string

const (
	TaskPriorityCritical TaskPriority = "critical"
	TaskPriorityHigh     TaskPriority = "high"
	TaskPriorityMedium   TaskPriority = "medium"
	TaskPriorityLow      TaskPriority = "low"
)

func (p TaskPriority) String() string { return string(p) }

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityCritical, TaskPriorityHigh, TaskPriorityMedium, TaskPriorityLow:
		return true
	}
	return false
}

// WorkStatus is shared by tasks and deficiencies.
type WorkStatus string

const (
	WorkStatusOpen       WorkStatus = "open"
	WorkStatusInProgress WorkStatus = "in_progress"
	WorkStatusClosed     WorkStatus = "closed"
)

func (s WorkStatus) String() string { return string(s) }

func (s WorkStatus) IsValid() bool {
	switch s {
	case WorkStatusOpen, WorkStatusInProgress, WorkStatusClosed:
		return true
	}
	return false
}

// IsOpen reports whether the work item still needs attention.
func (s WorkStatus) IsOpen() bool {
	return s == WorkStatusOpen || s == WorkStatusInProgress
}

// OpenWorkStatuses lists the statuses that count as open.
func OpenWorkStatuses() []WorkStatus {
	return []WorkStatus{WorkStatusOpen, WorkStatusInProgress}
}

// InspectionStatus represents the lifecycle of a single inspection walk.
type InspectionStatus string

const (
	InspectionStatusInProgress InspectionStatus = "in_progress"
	InspectionStatusCompleted  InspectionStatus = "completed"
	InspectionStatusExpired    InspectionStatus = "expired"
)

func (s InspectionStatus) String() string { return string(s) }

func (s InspectionStatus) IsValid() bool {
	switch s {
	case InspectionStatusInProgress, InspectionStatusCompleted, InspectionStatusExpired:
		return true
	}
	return false
}

// NotificationType identifies the kind of notification; it also scopes deduplication.
type NotificationType string

const (
	NotificationTypeTaskOverdue   NotificationType = "task_overdue"
	NotificationTypeSLAWarning    NotificationType = "sla_warning"
	NotificationTypeInspectionDue NotificationType = "inspection_due"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeTaskOverdue, NotificationTypeSLAWarning, NotificationTypeInspectionDue:
		return true
	}
	return false
}

// SpaceStatus is the derived traffic-light classification of a space.
type SpaceStatus string

const (
	SpaceStatusGreen SpaceStatus = "green"
	SpaceStatusAmber SpaceStatus = "amber"
	SpaceStatusRed   SpaceStatus = "red"
	SpaceStatusGrey  SpaceStatus = "grey"
)

func (s SpaceStatus) String() string { return string(s) }

func (s SpaceStatus) IsValid() bool {
	switch s {
	case SpaceStatusGreen, SpaceStatusAmber, SpaceStatusRed, SpaceStatusGrey:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user within a tenant.
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleSupervisor UserRole = "supervisor"
	UserRoleStaff      UserRole = "staff"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleSupervisor, UserRoleStaff:
		return true
	}
	return false
}

// CanManageBuilding reports whether the role receives building-level alerts.
func (r UserRole) CanManageBuilding() bool {
	return r == UserRoleAdmin || r == UserRoleSupervisor
}
