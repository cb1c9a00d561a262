package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
	"github.com/pitchscout/scout-ui-api/internal/domain/guard"
	"github.com/pitchscout/scout-ui-api/internal/domain/nav"
	"github.com/pitchscout/scout-ui-api/internal/service"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Guard resolves the session for each request and enforces the route
// protection rules. Decisions come from guard.Evaluate; this type only
// translates them into HTTP.
type Guard struct {
	Auth   AuthServiceInterface
	Tokens TokenStore
	Mapper domainauth.RoleMapper
	Logger *slog.Logger
}

func (g *Guard) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// Protect wraps a subtree so only the listed canonical roles may pass. Empty
// roles means any authenticated user.
func (g *Guard) Protect(roles ...domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := g.resolveSession(w, r)

			artifacts := g.Tokens.Read(r)
			in := guard.Input{
				Authenticated: session != nil,
				Token:         artifacts.AccessToken,
				RequiredRoles: roles,
				AttemptedPath: r.URL.RequestURI(),
				Mapper:        g.Mapper,
			}
			switch {
			case session != nil:
				in.User = &session.User
				if in.Token == "" {
					in.Token = session.Token
				}
			case artifacts.User != nil:
				// A cached user with no live session still goes through the
				// full rule order so an expired token purges artifacts
				// instead of reading as a plain logged-out state.
				in.User = artifacts.User
				in.Authenticated = artifacts.AccessToken != ""
			}

			decision := guard.Evaluate(in)
			if decision.State != guard.StateAuthorized {
				g.deny(w, r, decision)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetSessionInContext(r.Context(), session)))
		})
	}
}

// resolveSession loads the session for the request: the session cookie
// first, then a one-shot token verify for silent resume after the cookie is
// gone. Verify failures are logged and leave the request unauthenticated.
func (g *Guard) resolveSession(w http.ResponseWriter, r *http.Request) *domainauth.Session {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		session, err := g.Auth.GetSession(r.Context(), c.Value)
		if err == nil {
			return session
		}
		if !errors.Is(err, service.ErrSessionExpired) {
			g.logger().DebugContext(r.Context(), "session lookup failed", "err", err)
		}
	}

	artifacts := g.Tokens.Read(r)
	if artifacts.AccessToken == "" || domainauth.IsExpired(artifacts.AccessToken) {
		return nil
	}

	session, err := g.Auth.Verify(r.Context(), artifacts.AccessToken)
	if err != nil {
		g.logger().WarnContext(r.Context(), "session resume failed", "err", err)
		return nil
	}
	g.Tokens.SetSessionCookie(w, r, *session)
	return session
}

// deny turns a non-authorized guard decision into an HTTP response. Browser
// requests get replace-style 303 redirects carrying from and msg params; API
// requests get JSON envelopes.
func (g *Guard) deny(w http.ResponseWriter, r *http.Request, d guard.Decision) {
	if d.ClearArtifacts {
		g.Tokens.Clear(w, r)
	}

	if !isBrowserRequest(r) {
		code := http.StatusUnauthorized
		errCode := "authentication_required"
		switch d.State {
		case guard.StateExpired:
			errCode = "session_expired"
		case guard.StateUnauthorized:
			code = http.StatusForbidden
			errCode = "insufficient_permissions"
		}
		body := map[string]any{"error": errCode, "message": d.Message}
		if d.Deny != nil {
			body["required_roles"] = d.Deny.RequiredRoles
			body["user_role"] = d.Deny.UserRole
			body["attempted_path"] = d.Deny.AttemptedPath
		}
		WriteJSON(w, code, body)
		return
	}

	target := d.RedirectPath
	q := url.Values{}
	if d.Message != "" {
		q.Set("msg", d.Message)
	}
	if from := safeRedirectPath(r.URL.RequestURI()); from != "/" {
		q.Set("from", from)
	}
	if d.Deny != nil {
		q.Set("role", d.Deny.UserRole)
	}
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}

	// 303 See Other keeps the navigation replace-style: the denied location
	// never lands in the history stack.
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// RedirectRoot sends / to the caller's role dashboard, or to login when no
// session resolves.
func (g *Guard) RedirectRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFound(w, r)
		return
	}
	session := g.resolveSession(w, r)
	target := nav.LoginPath
	if session != nil {
		target = nav.DashboardPath(session.Role)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// isBrowserRequest splits browser navigations from API calls: API routes are
// JSON by construction, everything else follows the Accept header.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}

// safeRedirectPath ensures the provided redirect is a same-origin relative
// path starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
