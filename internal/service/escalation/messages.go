package escalation

import (
	"fmt"
	"time"

	"github.com/heartmarshall/facility-backend/internal/domain"
)

const (
	maxSubjectRunes = 80
	timeLayout      = "2006-01-02 15:04 MST"
)

func overdueMessage(t *domain.Task) string {
	if t.DueDate == nil {
		return fmt.Sprintf("Task overdue: %s", subject(t.Description))
	}
	return fmt.Sprintf("Task overdue: %s (was due %s)", subject(t.Description), t.DueDate.Format(timeLayout))
}

func slaMessage(t *domain.Task) string {
	return fmt.Sprintf("Task due soon: %s (due %s)", subject(t.Description), t.DueDate.Format(timeLayout))
}

func inspectionDueMessage(sched *domain.InspectionSchedule, building *domain.Building, spaces int, now time.Time) string {
	msg := fmt.Sprintf("Inspection due: %s at %s", subject(sched.Name), subject(building.Name))
	if spaces >= 0 {
		msg += fmt.Sprintf(" (%d spaces)", spaces)
	}
	return msg + ", " + now.Format("2006-01-02")
}

// subject shortens free text for SMS-sized messages.
func subject(s string) string {
	r := []rune(s)
	if len(r) <= maxSubjectRunes {
		return s
	}
	return string(r[:maxSubjectRunes-1]) + "…"
}
