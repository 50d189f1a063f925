package internal

import (
	"context"
	"time"
)

type contextKey string

// ContextUserKey carries the authenticated subject's identifier. It is set
// once the bearer token has been verified and read by profile handlers.
const ContextUserKey contextKey = "auth.user_id"

// ContextWithUserID stores a verified user identifier in the context.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextUserKey, userID)
}

// UserIDFromContext returns the verified user identifier, or "" when the
// request never passed authentication.
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	userID, _ := ctx.Value(ContextUserKey).(string)
	return userID
}

// WithTimeout wraps ctx with a deadline, falling back to 5 seconds when the
// caller passes a zero or negative duration.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
