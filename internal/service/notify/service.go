// Package notify fans a message out to a user's in-app, SMS and WhatsApp
// channels at most once per dedup window.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/provider"
)

type notificationRepo interface {
	ExistsSince(ctx context.Context, userID uuid.UUID, typ domain.NotificationType, linkContains string, since time.Time) (bool, error)
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type messenger interface {
	SendSMS(ctx context.Context, msg provider.Message) provider.SendResult
	SendWhatsApp(ctx context.Context, msg provider.Message) provider.SendResult
}

type errorReporter interface {
	CaptureException(ctx context.Context, err error, attrs ...slog.Attr)
}

// Dispatcher delivers notifications. A nil messenger disables the SMS and
// WhatsApp channels; in-app delivery still happens.
type Dispatcher struct {
	notifications notificationRepo
	users         userRepo
	messenger     messenger
	reporter      errorReporter
	policy        domain.EscalationPolicy
	now           func() time.Time
	log           *slog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(
	log *slog.Logger,
	notifications notificationRepo,
	users userRepo,
	messenger messenger,
	reporter errorReporter,
	policy domain.EscalationPolicy,
) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		users:         users,
		messenger:     messenger,
		reporter:      reporter,
		policy:        policy,
		now:           time.Now,
		log:           log.With("service", "notify"),
	}
}
