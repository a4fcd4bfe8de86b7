package appctx

import "context"

type contextKey string

const tokenKey contextKey = "session_token"

// WithToken stores the caller's session token for the duration of a request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// Token returns the session token carried by the context, or "".
func Token(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
