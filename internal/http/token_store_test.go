package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
)

func requestWithCookies(cookies map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/scout/players", nil)
	for name, value := range cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return req
}

func TestTokenStoreReadFallbackOrder(t *testing.T) {
	store := TokenStore{}

	tests := []struct {
		name    string
		cookies map[string]string
		want    string
	}{
		{
			name:    "primary name wins",
			cookies: map[string]string{"ps_access_token": "primary", "access_token": "legacy", "token": "oldest"},
			want:    "primary",
		},
		{
			name:    "first legacy fallback",
			cookies: map[string]string{"access_token": "legacy", "token": "oldest"},
			want:    "legacy",
		},
		{
			name:    "oldest fallback",
			cookies: map[string]string{"token": "oldest"},
			want:    "oldest",
		},
		{
			name:    "empty primary falls through",
			cookies: map[string]string{"ps_access_token": "", "access_token": "legacy"},
			want:    "legacy",
		},
		{
			name:    "nothing stored",
			cookies: map[string]string{},
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := store.Read(requestWithCookies(tt.cookies))
			assert.Equal(t, tt.want, a.AccessToken)
		})
	}
}

func TestTokenStoreReadRefreshFallback(t *testing.T) {
	store := TokenStore{}
	a := store.Read(requestWithCookies(map[string]string{"refresh_token": "legacy-refresh"}))
	assert.Equal(t, "legacy-refresh", a.RefreshToken)
}

func TestTokenStoreUserSnapshotRoundTrip(t *testing.T) {
	store := TokenStore{}
	user := domainauth.User{ID: "u-1", Email: "scout@club.example", RawRole: "subscriber"}

	encoded := encodeUserSnapshot(user)
	require.NotEmpty(t, encoded)

	a := store.Read(requestWithCookies(map[string]string{"ps_user": encoded}))
	require.NotNil(t, a.User)
	assert.Equal(t, user, *a.User)
}

func TestTokenStoreUserSnapshotUnreadable(t *testing.T) {
	store := TokenStore{}

	tests := []struct {
		name string
		raw  string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"not json", "bm90LWpzb24"},
		{"missing id", "e30"}, // {}
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := store.Read(requestWithCookies(map[string]string{"ps_user": tt.raw}))
			assert.Nil(t, a.User, "unreadable snapshot must read as absent")
		})
	}
}

func TestTokenStoreClearPurgesEverySlot(t *testing.T) {
	store := TokenStore{}
	rec := httptest.NewRecorder()
	store.Clear(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	cleared := map[string]bool{}
	for _, c := range rec.Result().Cookies() {
		assert.Empty(t, c.Value, "cookie %s should be emptied", c.Name)
		assert.Negative(t, c.MaxAge, "cookie %s should expire immediately", c.Name)
		cleared[c.Name] = true
	}

	for _, name := range []string{
		"ps_access_token", "access_token", "token",
		"ps_refresh_token", "refresh_token",
		"ps_user", "user",
		SessionCookieName,
	} {
		assert.True(t, cleared[name], "expected %s to be cleared", name)
	}
}

func TestTokenStoreWriteMirrorsSessionExpiry(t *testing.T) {
	store := TokenStore{}
	rec := httptest.NewRecorder()
	sess := domainauth.Session{
		ID:        "sess-1",
		User:      domainauth.User{ID: "u-1", RawRole: "scout"},
		Role:      domainauth.RoleScout,
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	store.Write(rec, httptest.NewRequest(http.MethodGet, "/auth/callback", nil), sess)

	byName := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		byName[c.Name] = c
	}

	require.Contains(t, byName, "ps_access_token")
	assert.Equal(t, "tok", byName["ps_access_token"].Value)
	assert.InDelta(t, 3600, byName["ps_access_token"].MaxAge, 5)

	require.Contains(t, byName, "ps_user")
	assert.InDelta(t, 3600, byName["ps_user"].MaxAge, 5)
	assert.True(t, byName["ps_user"].HttpOnly)
}

func TestTokenStoreSecureFlagFollowsRequest(t *testing.T) {
	store := TokenStore{}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	store.setCookie(rec, req, "probe", "v", 60)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.True(t, rec.Result().Cookies()[0].Secure)

	rec = httptest.NewRecorder()
	store.setCookie(rec, httptest.NewRequest(http.MethodGet, "/", nil), "probe", "v", 60)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.False(t, rec.Result().Cookies()[0].Secure)
}
