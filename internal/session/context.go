package session

import "context"

type contextKey struct {
	name string
}

var sessionKey = contextKey{"session"}

// ContextWithSession stores the authenticated session in the request context.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// FromContext retrieves the session placed in the context by the
// RequireSession middleware.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(sessionKey).(Session)
	return sess, ok
}
