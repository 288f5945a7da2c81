// Package recurrence computes occurrences of recurring inspection schedules.
// All arithmetic happens in the location of the supplied "now", which is the
// server's wall clock.
package recurrence

import (
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/facility-backend/internal/domain"
)

const (
	defaultWeekday    = time.Monday
	defaultDayOfMonth = 1
	maxDayOfMonth     = 28
	fallbackInterval  = 24 * time.Hour
)

// Rule is the part of a schedule that drives recurrence.
type Rule struct {
	Frequency  domain.Frequency
	DayOfWeek  *int
	DayOfMonth *int
	TimeOfDay  string
}

// RuleOf extracts the recurrence rule of a schedule.
func RuleOf(s domain.InspectionSchedule) Rule {
	return Rule{
		Frequency:  s.Frequency,
		DayOfWeek:  s.DayOfWeek,
		DayOfMonth: s.DayOfMonth,
		TimeOfDay:  s.TimeOfDay,
	}
}

// NextDue returns the next occurrence of rule strictly after now. It never
// fails: malformed fields fall back to their defaults so that a bad row can
// not stall a schedule.
func NextDue(rule Rule, now time.Time) time.Time {
	hour, minute, _ := ParseTimeOfDay(rule.TimeOfDay)

	switch rule.Frequency {
	case domain.FrequencyDaily:
		return at(now, 1, hour, minute)

	case domain.FrequencyWeekly:
		return at(now, daysUntil(now.Weekday(), weekday(rule.DayOfWeek)), hour, minute)

	case domain.FrequencyBiweekly:
		return at(now, daysUntil(now.Weekday(), weekday(rule.DayOfWeek))+7, hour, minute)

	case domain.FrequencyMonthly:
		// time.Date normalizes month 13 into January of the next year.
		return time.Date(now.Year(), now.Month()+1, dayOfMonth(rule.DayOfMonth), hour, minute, 0, 0, now.Location())

	default:
		return now.Add(fallbackInterval)
	}
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS". On malformed input it returns
// midnight and ok=false.
func ParseTimeOfDay(s string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, 0, false
		}
	}

	return h, m, true
}

// daysUntil counts days from "from" to the next "target". A zero distance
// means next week, never today.
func daysUntil(from, target time.Weekday) int {
	d := (int(target) - int(from) + 7) % 7
	if d == 0 {
		d = 7
	}
	return d
}

func at(now time.Time, addDays, hour, minute int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+addDays, hour, minute, 0, 0, now.Location())
}

func weekday(v *int) time.Weekday {
	if v == nil || *v < 0 || *v > 6 {
		return defaultWeekday
	}
	return time.Weekday(*v)
}

func dayOfMonth(v *int) int {
	if v == nil {
		return defaultDayOfMonth
	}
	switch {
	case *v < 1:
		return 1
	case *v > maxDayOfMonth:
		return maxDayOfMonth
	}
	return *v
}
