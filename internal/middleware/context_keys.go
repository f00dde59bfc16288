// Context keys and getters for the authenticated subject (set by AuthMiddleware).
package middleware

import "context"

type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserType  contextKey = "user_type"
)

// UserIDFrom returns the authenticated record id from the context.
func UserIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyUserID).(string); ok {
		return v
	}
	return ""
}

// UserEmailFrom returns the authenticated email from the context.
func UserEmailFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyUserEmail).(string); ok {
		return v
	}
	return ""
}

// UserTypeFrom returns the subject type (company/admin) from the context.
func UserTypeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ContextKeyUserType).(string); ok {
		return v
	}
	return ""
}
