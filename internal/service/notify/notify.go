package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/facility-backend/internal/domain"
	"github.com/heartmarshall/facility-backend/internal/provider"
)

var errDeliveryFailed = errors.New("delivery failed")

// Request is one notification for one user. EntityID identifies the task or
// schedule the message is about; it must appear in Link.
type Request struct {
	UserID   uuid.UUID
	Type     domain.NotificationType
	Message  string
	Link     string
	EntityID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (r Request) Validate() error {
	var errs []domain.FieldError
	if r.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !r.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid notification type"})
	}
	if r.Message == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// dedupKey is the substring of Link the ledger lookup matches on.
func (r Request) dedupKey() string {
	if r.EntityID == uuid.Nil {
		return r.Link
	}
	return r.EntityID.String()
}

// Outcome reports what a Notify call did.
type Outcome struct {
	// Suppressed is set when a recent notification already covered the request.
	Suppressed   bool `json:"suppressed"`
	InApp        bool `json:"in_app"`
	SMSSent      bool `json:"sms_sent"`
	WhatsAppSent bool `json:"whatsapp_sent"`
	// Failed counts channel deliveries that were attempted and failed.
	Failed int `json:"failed"`
}

// Delivered reports whether the request produced a new ledger row.
func (o Outcome) Delivered() bool {
	return !o.Suppressed
}

// Notify delivers req unless the same user was notified about the same
// entity within the dedup window of req.Type.
//
// The ledger row is written before any external send, so a crash after it
// never leads to a repeated SMS on the next run. When the user has in-app
// notifications off, the row is stored already read: it stays out of the
// inbox but still suppresses repeats. Provider failures are reported and
// counted in the Outcome; they never turn into an error.
func (d *Dispatcher) Notify(ctx context.Context, req Request) (Outcome, error) {
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}

	since := d.now().Add(-d.policy.DedupWindow(req.Type))
	seen, err := d.notifications.ExistsSince(ctx, req.UserID, req.Type, req.dedupKey(), since)
	if err != nil {
		return Outcome{}, fmt.Errorf("dedup lookup: %w", err)
	}
	if seen {
		d.log.DebugContext(ctx, "notification suppressed",
			slog.String("user_id", req.UserID.String()),
			slog.String("type", req.Type.String()),
			slog.String("entity_id", req.EntityID.String()),
		)
		return Outcome{Suppressed: true}, nil
	}

	user, err := d.users.GetByID(ctx, req.UserID)
	if err != nil {
		return Outcome{}, fmt.Errorf("get user: %w", err)
	}
	prefs := user.NotificationPrefs

	if _, err := d.notifications.Create(ctx, &domain.Notification{
		UserID:  user.ID,
		Type:    req.Type,
		Message: req.Message,
		Link:    req.Link,
		Read:    !prefs.InAppEnabled(),
	}); err != nil {
		return Outcome{}, fmt.Errorf("create notification: %w", err)
	}

	out := Outcome{InApp: prefs.InAppEnabled()}

	if d.messenger != nil && user.HasPhone() {
		msg := provider.Message{To: *user.Phone, Body: req.Message}

		if prefs.SMSEnabled() {
			out.SMSSent = d.deliver(ctx, provider.ChannelSMS, req, d.messenger.SendSMS(ctx, msg))
			if !out.SMSSent {
				out.Failed++
			}
		}
		if prefs.WhatsAppEnabled() {
			out.WhatsAppSent = d.deliver(ctx, provider.ChannelWhatsApp, req, d.messenger.SendWhatsApp(ctx, msg))
			if !out.WhatsAppSent {
				out.Failed++
			}
		}
	}

	d.log.InfoContext(ctx, "notification dispatched",
		slog.String("user_id", user.ID.String()),
		slog.String("type", req.Type.String()),
		slog.Bool("in_app", out.InApp),
		slog.Bool("sms", out.SMSSent),
		slog.Bool("whatsapp", out.WhatsAppSent),
	)

	return out, nil
}

// deliver inspects a provider result and reports failures.
func (d *Dispatcher) deliver(ctx context.Context, ch provider.Channel, req Request, res provider.SendResult) bool {
	if res.Success {
		return true
	}

	cause := res.Err
	if cause == nil {
		cause = errDeliveryFailed
	}
	d.reporter.CaptureException(ctx, fmt.Errorf("%s delivery: %w", ch, cause),
		slog.String("channel", ch.String()),
		slog.String("user_id", req.UserID.String()),
		slog.String("type", req.Type.String()),
		slog.String("entity_id", req.EntityID.String()),
	)
	return false
}
