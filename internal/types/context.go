package types

import "context"

// ContextKey is the typed key for request-scoped values.
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxUserID    ContextKey = "ctx_user_id"
	CtxOwnerID   ContextKey = "ctx_owner_id"
	CtxUserRole  ContextKey = "ctx_user_role"
)

// GetRequestID returns the request id from the context, or "" when absent.
func GetRequestID(ctx context.Context) string {
	return getString(ctx, CtxRequestID)
}

// GetUserID returns the authenticated user id from the context.
func GetUserID(ctx context.Context) string {
	return getString(ctx, CtxUserID)
}

// GetOwnerID returns the owner scope from the context. Empty means
// unscoped: an admin viewing all owners.
func GetOwnerID(ctx context.Context) string {
	return getString(ctx, CtxOwnerID)
}

// GetUserRole returns the authenticated user's role from the context.
func GetUserRole(ctx context.Context) UserRole {
	if role, ok := ctx.Value(CtxUserRole).(UserRole); ok {
		return role
	}
	return ""
}

func getString(ctx context.Context, key ContextKey) string {
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}
