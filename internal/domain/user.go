package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// User is a member of a tenant who can be notified.
type User struct {
	ID                uuid.UUID
	Email             string
	Name              string
	Phone             *string
	Role              UserRole
	NotificationPrefs NotificationPrefs
	CreatedAt         time.Time
}

// HasPhone reports whether the user can receive SMS or WhatsApp messages.
func (u *User) HasPhone() bool {
	return u.Phone != nil && *u.Phone != ""
}

// NotificationPrefs holds per-channel opt-ins. A nil field means "not set" and
// falls back to the channel default: in-app on, SMS on, WhatsApp off.
type NotificationPrefs struct {
	InApp    *bool `json:"in_app,omitempty"`
	SMS      *bool `json:"sms,omitempty"`
	WhatsApp *bool `json:"whatsapp,omitempty"`
}

// InAppEnabled is true unless the user explicitly turned in-app off.
func (p NotificationPrefs) InAppEnabled() bool {
	return p.InApp == nil || *p.InApp
}

// SMSEnabled is true unless the user explicitly turned SMS off.
func (p NotificationPrefs) SMSEnabled() bool {
	return p.SMS == nil || *p.SMS
}

// WhatsAppEnabled is false unless the user explicitly turned WhatsApp on.
func (p NotificationPrefs) WhatsAppEnabled() bool {
	return p.WhatsApp != nil && *p.WhatsApp
}

// ParseNotificationPrefs decodes the stored preference blob key by key. A key
// that is missing or not a boolean keeps its channel default; malformed input
// yields zero prefs.
func ParseNotificationPrefs(raw []byte) NotificationPrefs {
	var p NotificationPrefs
	if len(raw) == 0 {
		return p
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return p
	}
	p.InApp = prefFlag(keys["in_app"])
	p.SMS = prefFlag(keys["sms"])
	p.WhatsApp = prefFlag(keys["whatsapp"])
	return p
}

func prefFlag(raw json.RawMessage) *bool {
	var v *bool
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return nil
	}
	return v
}

// Actor is the user a storage mutation is attributed to. The zero value is the
// system itself (cron jobs), persisted as a NULL updated_by.
type Actor struct {
	UserID uuid.UUID
}

// SystemActor returns the actor used by background jobs.
func SystemActor() Actor { return Actor{} }

// ActingAs returns an actor for the given user.
func ActingAs(userID uuid.UUID) Actor { return Actor{UserID: userID} }

// IsSystem reports whether the mutation is not attributed to a user.
func (a Actor) IsSystem() bool { return a.UserID == uuid.Nil }

// Ref returns the user id to persist, or nil for the system.
func (a Actor) Ref() *uuid.UUID {
	if a.IsSystem() {
		return nil
	}
	id := a.UserID
	return &id
}
