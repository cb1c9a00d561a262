package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginLoginSetsOAuthCookiesAndRedirects(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuth{}, Tokens: TokenStore{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/scout/reports", nil)
	rec := httptest.NewRecorder()
	h.BeginLogin(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://idp.example/auth", rec.Header().Get("Location"))

	byName := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		byName[c.Name] = c
	}
	require.Contains(t, byName, "oauth_state")
	assert.Equal(t, "state-1", byName["oauth_state"].Value)
	require.Contains(t, byName, "oauth_nonce")
	assert.Equal(t, "nonce-1", byName["oauth_nonce"].Value)
	require.Contains(t, byName, "post_login_redirect")
	assert.Equal(t, "/scout/reports", byName["post_login_redirect"].Value)
}

func TestBeginLoginRejectsAbsoluteRedirect(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuth{}, Tokens: TokenStore{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=https://evil.example/", nil)
	rec := httptest.NewRecorder()
	h.BeginLogin(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "post_login_redirect" {
			assert.Equal(t, "/", c.Value, "absolute redirect must collapse to root")
		}
	}
}

func TestCallbackValidation(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuth{}, Tokens: TokenStore{}}

	tests := []struct {
		name    string
		target  string
		cookies map[string]string
		errCode string
	}{
		{
			name:    "missing code",
			target:  "/auth/callback?state=s1",
			errCode: "missing_code",
		},
		{
			name:    "missing state",
			target:  "/auth/callback?code=c1",
			errCode: "missing_state",
		},
		{
			name:    "state cookie mismatch",
			target:  "/auth/callback?code=c1&state=s1",
			cookies: map[string]string{"oauth_state": "other"},
			errCode: "invalid_state",
		},
		{
			name:    "missing nonce cookie",
			target:  "/auth/callback?code=c1&state=s1",
			cookies: map[string]string{"oauth_state": "s1"},
			errCode: "missing_nonce",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for name, value := range tt.cookies {
				req.AddCookie(&http.Cookie{Name: name, Value: value})
			}
			rec := httptest.NewRecorder()
			h.Callback(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.errCode)
		})
	}
}

func TestCallbackSuccessEstablishesSession(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))
	h := &AuthHandlers{Svc: &stubAuth{session: scoutSession(token)}, Tokens: TokenStore{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=c1&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
	req.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "n1"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/scout/dashboard", rec.Header().Get("Location"))

	byName := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		byName[c.Name] = c
	}
	require.Contains(t, byName, SessionCookieName)
	assert.Equal(t, "sess-1", byName[SessionCookieName].Value)
	require.Contains(t, byName, "ps_access_token")
	assert.Equal(t, token, byName["ps_access_token"].Value)
	require.Contains(t, byName, "ps_user")

	// Temporary OAuth cookies are dropped.
	require.Contains(t, byName, "oauth_state")
	assert.Negative(t, byName["oauth_state"].MaxAge)
	require.Contains(t, byName, "oauth_nonce")
	assert.Negative(t, byName["oauth_nonce"].MaxAge)
}

func TestCallbackHonorsStashedRedirect(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))
	h := &AuthHandlers{Svc: &stubAuth{session: scoutSession(token)}, Tokens: TokenStore{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=c1&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
	req.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "n1"})
	req.AddCookie(&http.Cookie{Name: "post_login_redirect", Value: "/scout/reports?tab=drafts"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/scout/reports?tab=drafts", rec.Header().Get("Location"))
}

func TestCallbackIgnoresHostileStashedRedirect(t *testing.T) {
	token := signToken(t, time.Now().Add(time.Hour))
	h := &AuthHandlers{Svc: &stubAuth{session: scoutSession(token)}, Tokens: TokenStore{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=c1&state=s1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "s1"})
	req.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "n1"})
	req.AddCookie(&http.Cookie{Name: "post_login_redirect", Value: "https://evil.example/phish"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/scout/dashboard", rec.Header().Get("Location"))
}

func TestLogoutClearsArtifacts(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuth{}, Tokens: TokenStore{}}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
	req.AddCookie(&http.Cookie{Name: "ps_access_token", Value: "tok"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed_out")
	assert.Contains(t, rec.Body.String(), "/login")

	cleared := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared[c.Name] = true
		}
	}
	assert.True(t, cleared["ps_access_token"])
	assert.True(t, cleared[SessionCookieName])
}

func TestLogoutBrowserRedirects(t *testing.T) {
	h := &AuthHandlers{Svc: &stubAuth{}, Tokens: TokenStore{}}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestStatus(t *testing.T) {
	t.Run("no session cookie", func(t *testing.T) {
		h := &AuthHandlers{Svc: &stubAuth{}, Tokens: TokenStore{}}
		rec := httptest.NewRecorder()
		h.Status(rec, httptest.NewRequest(http.MethodGet, "/auth/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":false`)
	})

	t.Run("active session", func(t *testing.T) {
		token := signToken(t, time.Now().Add(time.Hour))
		h := &AuthHandlers{Svc: &stubAuth{session: scoutSession(token)}, Tokens: TokenStore{}}

		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
		rec := httptest.NewRecorder()
		h.Status(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"authenticated":true`)
		assert.Contains(t, body, `"role":"scout"`)
		assert.Contains(t, body, "scout@club.example")
	})

	t.Run("dead session purges cookies", func(t *testing.T) {
		h := &AuthHandlers{Svc: &stubAuth{getErr: assert.AnError}, Tokens: TokenStore{}}

		req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-1"})
		rec := httptest.NewRecorder()
		h.Status(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authenticated":false`)

		cleared := false
		for _, c := range rec.Result().Cookies() {
			if c.Name == SessionCookieName && c.MaxAge < 0 {
				cleared = true
			}
		}
		assert.True(t, cleared)
	})
}
