package httpx

import (
	"context"
	"errors"
	"net/http"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across
// packages. Centralized here so all handlers and middleware share one key.
type sessionKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session from context and a boolean
// indicating presence.
func SessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// mustSession fetches the session from context, writing a 401 when none is
// present. Guarded routes can still reach a handler without a server-side
// session (cookie-cached user only), so handlers that need the user ID go
// through here rather than assuming one exists.
func mustSession(w http.ResponseWriter, r *http.Request) (*domainauth.Session, bool) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required",
			Err: errors.New("authentication required")})
	}
	return session, ok
}
