package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
	"github.com/pitchscout/scout-ui-api/internal/domain/nav"
	"github.com/pitchscout/scout-ui-api/internal/service"
)

// AuthServiceInterface defines the auth service operations the HTTP layer
// consumes.
type AuthServiceInterface interface {
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Verify(ctx context.Context, token string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID, token string) error
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc    AuthServiceInterface
	Tokens TokenStore
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// BeginLogin starts the provider login flow.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) BeginLogin(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	result, err := h.Svc.BeginLogin(r.Context(), redirectURI)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "login_failed", Err: err})
		return
	}

	h.setOAuthCookies(w, r, oauthCookieParams{State: result.State, Nonce: result.Nonce, RedirectURI: redirectURI})
	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// Callback completes the provider login flow.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "missing_code",
			Err: errors.New("authorization code is required")})
		return
	}
	if state == "" {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "missing_state",
			Err: errors.New("state parameter is required")})
		return
	}

	stateCookie, err := r.Cookie("oauth_state")
	if err != nil || stateCookie.Value != state {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_state",
			Err: errors.New("invalid or missing state parameter")})
		return
	}
	nonceCookie, err := r.Cookie("oauth_nonce")
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "missing_nonce",
			Err: errors.New("missing nonce parameter")})
		return
	}

	result, err := h.Svc.CompleteLogin(r.Context(), service.CompleteLoginInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "login_completion_failed", Err: err})
		return
	}

	// Persist the session cookie plus the artifact cookies, and drop the
	// temporary OAuth ones.
	h.Tokens.SetSessionCookie(w, r, result.Session)
	h.Tokens.Write(w, r, result.Session)
	h.clearCookie(w, r, "oauth_state")
	h.clearCookie(w, r, "oauth_nonce")

	redirectURI := h.postLoginRedirect(w, r, result.Session)
	http.Redirect(w, r, redirectURI, http.StatusSeeOther)
}

// Logout ends the session. Local cleanup and the redirect are synchronous;
// the provider-side logout runs detached inside the service.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID := ""
	if c, err := r.Cookie(SessionCookieName); err == nil {
		sessionID = c.Value
	}
	token := h.Tokens.Read(r).AccessToken

	if err := h.Svc.Logout(r.Context(), sessionID, token); err != nil {
		h.logger().WarnContext(r.Context(), "logout failed", "err", err)
	}

	h.Tokens.Clear(w, r)

	if !isBrowserRequest(r) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "signed_out", "redirect_to": nav.LoginPath})
		return
	}
	http.Redirect(w, r, nav.LoginPath, http.StatusSeeOther)
}

// Status reports the current authentication state.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		// Invalid or expired; purge what the browser still holds.
		h.Tokens.Clear(w, r)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          session.User,
		"role":          session.Role,
		"expires_at":    session.ExpiresAt,
	})
}

// oauthCookieParams groups values needed to set OAuth cookies.
type oauthCookieParams struct {
	State       string
	Nonce       string
	RedirectURI string
}

const oauthCookieMaxAge = 600 // 10 minutes

func (h *AuthHandlers) setOAuthCookies(w http.ResponseWriter, r *http.Request, p oauthCookieParams) {
	h.Tokens.setCookie(w, r, "oauth_state", p.State, oauthCookieMaxAge)
	h.Tokens.setCookie(w, r, "oauth_nonce", p.Nonce, oauthCookieMaxAge)
	h.Tokens.setCookie(w, r, "post_login_redirect", p.RedirectURI, oauthCookieMaxAge)
}

func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	h.Tokens.setCookie(w, r, name, "", -1)
}

// postLoginRedirect returns where to land after login: the stashed original
// destination when one exists, the role dashboard otherwise.
func (h *AuthHandlers) postLoginRedirect(w http.ResponseWriter, r *http.Request, sess domainauth.Session) string {
	if c, err := r.Cookie("post_login_redirect"); err == nil {
		h.clearCookie(w, r, "post_login_redirect")
		// Defensive re-validation: allow only relative in-app paths.
		candidate := c.Value
		u, parseErr := url.Parse(candidate)
		if parseErr == nil && !u.IsAbs() && u.Host == "" &&
			strings.HasPrefix(u.Path, "/") && u.Path != "/" {
			return candidate
		}
	}
	return nav.DashboardPath(sess.Role)
}
