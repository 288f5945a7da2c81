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

// OverdueSummary is the result of one overdue-check run.
type OverdueSummary struct {
	Checked  int `json:"checked"`
	Notified int `json:"notified"`
}

// CheckOverdue notifies the creator and, when different, the assignee of
// every open task whose due date has passed. Tasks are not modified; the
// notification ledger alone keeps repeat runs quiet for an hour.
func (s *Service) CheckOverdue(ctx context.Context, now time.Time) (OverdueSummary, error) {
	ctx, span := s.tracer.Start(ctx, "escalation.CheckOverdue")
	defer span.End()

	since := s.notifiedSince(now, domain.NotificationTypeTaskOverdue)
	tasks, err := s.tasks.ListOverdue(ctx, now, since, s.policy.BatchLimit)
	if err != nil {
		failSpan(span, err)
		return OverdueSummary{}, fmt.Errorf("list overdue tasks: %w", err)
	}

	sum := OverdueSummary{Checked: len(tasks)}
	for i := range tasks {
		t := &tasks[i]
		for _, userID := range t.Recipients() {
			if s.send(ctx, notify.Request{
				UserID:   userID,
				Type:     domain.NotificationTypeTaskOverdue,
				Message:  overdueMessage(t),
				Link:     domain.TaskLink(t.ID),
				EntityID: t.ID,
			}) {
				sum.Notified++
			}
		}
	}

	span.SetAttributes(
		attribute.Int("escalation.checked", sum.Checked),
		attribute.Int("escalation.notified", sum.Notified),
	)
	s.log.InfoContext(ctx, "overdue check finished",
		slog.Int("checked", sum.Checked),
		slog.Int("notified", sum.Notified),
	)

	return sum, nil
}
