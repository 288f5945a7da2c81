package escalation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/service/notify"
)

// SLASummary is the result of one SLA-warning run.
type SLASummary struct {
	Checked  int `json:"checked"`
	Notified int `json:"notified"`
}

// WarnSLA warns assignees of open tasks falling due in (now, now+SLAWindow].
func (s *Service) WarnSLA(ctx context.Context, now time.Time) (SLASummary, error) {
	ctx, span := s.tracer.Start(ctx, "escalation.WarnSLA")
	defer span.End()

	until := now.Add(s.policy.SLAWindow)
	tasks, err := s.tasks.ListAssignedDueBetween(ctx, now, until,
		s.notifiedSince(now, domain.NotificationTypeSLAWarning), s.policy.BatchLimit)
	if err != nil {
		failSpan(span, err)
		return SLASummary{}, fmt.Errorf("list tasks due soon: %w", err)
	}

	sum := SLASummary{Checked: len(tasks)}
	for i := range tasks {
		t := &tasks[i]
		if t.AssignedTo == nil || t.DueDate == nil {
			continue
		}
		if s.send(ctx, notify.Request{
			UserID:   *t.AssignedTo,
			Type:     domain.NotificationTypeSLAWarning,
			Message:  slaMessage(t),
			Link:     domain.TaskLink(t.ID),
			EntityID: t.ID,
		}) {
			sum.Notified++
		}
	}

	span.SetAttributes(
		attribute.Int("escalation.checked", sum.Checked),
		attribute.Int("escalation.notified", sum.Notified),
	)
	s.log.InfoContext(ctx, "sla warning finished",
		slog.Int("checked", sum.Checked),
		slog.Int("notified", sum.Notified),
		slog.Time("until", until),
	)

	return sum, nil
}
