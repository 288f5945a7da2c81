// Package ctxutil carries request-scoped identifiers through a context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	actingUserKey ctxKey = "acting_user_id"
	requestIDKey  ctxKey = "request_id"
)

// WithActingUser stores the id of the user on whose behalf the request runs.
func WithActingUser(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, actingUserKey, id)
}

// ActingUserFromCtx extracts the acting user id.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func ActingUserFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actingUserKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
