package middleware

import "context"

type contextKey string

const (
	ctxAccountID contextKey = "account_id"
	ctxHandle    contextKey = "handle"
	ctxAdmin     contextKey = "admin"
)

func AccountIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAccountID).(string); ok {
		return v
	}
	return ""
}

func HandleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxHandle).(string); ok {
		return v
	}
	return ""
}

func AdminFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(ctxAdmin).(bool); ok {
		return v
	}
	return false
}

// WithHandle injects the authenticated handle into the context.
func WithHandle(ctx context.Context, handle string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxHandle, handle)
}

// WithAccountID injects the account identifier into the context for downstream handlers.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxAccountID, accountID)
}
