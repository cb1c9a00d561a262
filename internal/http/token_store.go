package httpx

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
)

// Cookie slot names for persisted auth artifacts. Each slot is read primary
// name first, then the documented legacy fallbacks, in order. The legacy
// names are what earlier releases wrote; sessions started there must keep
// working after an upgrade.
var (
	accessTokenNames  = []string{"ps_access_token", "access_token", "token"}
	refreshTokenNames = []string{"ps_refresh_token", "refresh_token"}
	userSnapshotNames = []string{"ps_user", "user"}
)

// SessionCookieName carries the server-side session ID.
const SessionCookieName = "session_id"

// Artifacts is one read of the persisted auth artifacts. Absence of any slot
// is a valid state, not an error.
type Artifacts struct {
	AccessToken  string
	RefreshToken string
	// User is the cached user snapshot, nil when absent or unreadable.
	User *domainauth.User
}

// TokenStore reads and clears the persisted auth artifact cookies.
type TokenStore struct {
	// CookieDomain scopes written cookies; empty means host-only.
	CookieDomain string
}

// Read collects the artifacts from the request, applying the legacy fallback
// order per slot. An unreadable user snapshot reads as absent.
func (t TokenStore) Read(r *http.Request) Artifacts {
	a := Artifacts{
		AccessToken:  firstCookie(r, accessTokenNames),
		RefreshToken: firstCookie(r, refreshTokenNames),
	}
	if raw := firstCookie(r, userSnapshotNames); raw != "" {
		a.User = decodeUserSnapshot(raw)
	}
	return a
}

// Write persists the artifacts. The snapshot cookie mirrors the token
// cookies' lifetime so the cached user never outlives its token on disk.
func (t TokenStore) Write(w http.ResponseWriter, r *http.Request, sess domainauth.Session) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	t.setCookie(w, r, "ps_access_token", sess.Token, maxAge)
	t.setCookie(w, r, "ps_user", encodeUserSnapshot(sess.User), maxAge)
}

// Clear removes every artifact slot, legacy names included, plus the session
// cookie. Called on expiry and logout; a partial purge would let a stale
// legacy cookie resurrect the session.
func (t TokenStore) Clear(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(accessTokenNames)+len(refreshTokenNames)+len(userSnapshotNames)+1)
	names = append(names, accessTokenNames...)
	names = append(names, refreshTokenNames...)
	names = append(names, userSnapshotNames...)
	names = append(names, SessionCookieName)
	for _, name := range names {
		t.setCookie(w, r, name, "", -1)
	}
}

// SetSessionCookie writes the server-side session ID cookie based on the
// session's expiry.
func (t TokenStore) SetSessionCookie(w http.ResponseWriter, r *http.Request, sess domainauth.Session) {
	t.setCookie(w, r, SessionCookieName, sess.ID, int(time.Until(sess.ExpiresAt).Seconds()))
}

func (t TokenStore) setCookie(w http.ResponseWriter, r *http.Request, name, value string, maxAge int) {
	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   t.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
	if maxAge < 0 {
		c.Expires = time.Unix(0, 0).UTC()
	}
	http.SetCookie(w, c)
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

func firstCookie(r *http.Request, names []string) string {
	for _, name := range names {
		if c, err := r.Cookie(name); err == nil && c.Value != "" {
			return c.Value
		}
	}
	return ""
}

// encodeUserSnapshot packs the user as base64url JSON; cookie values cannot
// carry raw JSON.
func encodeUserSnapshot(u domainauth.User) string {
	data, err := json.Marshal(u)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeUserSnapshot(raw string) *domainauth.User {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var u domainauth.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil
	}
	if u.ID == "" {
		return nil
	}
	return &u
}
