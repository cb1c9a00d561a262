package guard

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchscout/scout-ui-api/internal/domain/auth"
	"github.com/pitchscout/scout-ui-api/internal/domain/nav"
)

func testUser(rawRole string) *auth.User {
	return &auth.User{ID: "u-1", Email: "user@example.com", RawRole: rawRole}
}

func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestEvaluate_LoadingTakesPrecedence(t *testing.T) {
	// loading=true with no user wins regardless of every other input.
	d := Evaluate(Input{
		SessionLoading: true,
		Authenticated:  false,
		RequiredRoles:  []auth.Role{auth.RoleAdmin},
		Token:          "not-even-a-token",
	})

	assert.Equal(t, StateLoading, d.State)
	assert.Empty(t, d.RedirectPath)
	assert.False(t, d.ClearArtifacts)
}

func TestEvaluate_LoadingWithCachedUserProceeds(t *testing.T) {
	// A cached user short-circuits the loading gate so a re-check does not
	// blank out an already-rendered page.
	d := Evaluate(Input{
		SessionLoading: true,
		Authenticated:  true,
		User:           testUser("scout"),
	})

	assert.Equal(t, StateAuthorized, d.State)
}

func TestEvaluate_Unauthenticated(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"no user", Input{Authenticated: true}},
		{"not authenticated", Input{Authenticated: false, User: testUser("scout")}},
		{"roles ignored", Input{RequiredRoles: []auth.Role{auth.RoleAdmin}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.in)

			assert.Equal(t, StateUnauthenticated, d.State)
			assert.Equal(t, nav.LoginPath, d.RedirectPath)
			assert.Equal(t, MsgLoginRequired, d.Message)
			assert.False(t, d.ClearArtifacts)
		})
	}
}

func TestEvaluate_ExpiredToken(t *testing.T) {
	token := tokenExpiringAt(t, time.Now().Add(-time.Second))

	d := Evaluate(Input{
		Authenticated: true,
		User:          testUser("admin"),
		Token:         token,
	})

	assert.Equal(t, StateExpired, d.State)
	assert.Equal(t, nav.LoginPath, d.RedirectPath)
	assert.Equal(t, MsgSessionExpired, d.Message)
	assert.True(t, d.ClearArtifacts, "expired sessions must purge persisted artifacts")
}

func TestEvaluate_ExpiredTokenOverridesCachedUser(t *testing.T) {
	// A stale client-side user object does not override a server-expired
	// token, even when the role check would have passed.
	d := Evaluate(Input{
		Authenticated: true,
		User:          testUser("admin"),
		Token:         "x",
		ExpiredFn:     func(string) bool { return true },
		RequiredRoles: []auth.Role{auth.RoleAdmin},
	})

	assert.Equal(t, StateExpired, d.State)
}

func TestEvaluate_ValidTokenPasses(t *testing.T) {
	token := tokenExpiringAt(t, time.Now().Add(time.Hour))

	d := Evaluate(Input{
		Authenticated: true,
		User:          testUser("scout"),
		Token:         token,
	})

	assert.Equal(t, StateAuthorized, d.State)
}

func TestEvaluate_RoleChecks(t *testing.T) {
	tests := []struct {
		name     string
		rawRole  string
		required []auth.Role
		expected State
	}{
		{"support_admin counts as admin", "support_admin", []auth.Role{auth.RoleAdmin}, StateAuthorized},
		{"subscriber counts as scout", "subscriber", []auth.Role{auth.RoleScout}, StateAuthorized},
		{"player blocked from admin", "player", []auth.Role{auth.RoleAdmin}, StateUnauthorized},
		{"scout blocked from player tree", "scout", []auth.Role{auth.RolePlayer}, StateUnauthorized},
		{"multiple required roles", "player", []auth.Role{auth.RoleAdmin, auth.RolePlayer}, StateAuthorized},
		{"empty required means any authenticated", "analyst", nil, StateAuthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(Input{
				Authenticated: true,
				User:          testUser(tt.rawRole),
				RequiredRoles: tt.required,
				AttemptedPath: "/admin/players",
			})

			assert.Equal(t, tt.expected, d.State)
		})
	}
}

func TestEvaluate_UnauthorizedCarriesDenyContext(t *testing.T) {
	d := Evaluate(Input{
		Authenticated: true,
		User:          testUser("player"),
		RequiredRoles: []auth.Role{auth.RoleAdmin},
		AttemptedPath: "/admin/users",
	})

	assert.Equal(t, StateUnauthorized, d.State)
	assert.Equal(t, AccessDeniedPath, d.RedirectPath)
	require.NotNil(t, d.Deny)
	assert.Equal(t, []auth.Role{auth.RoleAdmin}, d.Deny.RequiredRoles)
	assert.Equal(t, "player", d.Deny.UserRole, "context carries the raw role for diagnosis")
	assert.Equal(t, "/admin/users", d.Deny.AttemptedPath)
}

func TestEvaluate_StrictMapperBlocksUnknownRoles(t *testing.T) {
	lenient := Evaluate(Input{
		Authenticated: true,
		User:          testUser("superstar"),
		RequiredRoles: []auth.Role{auth.Role("superstar")},
	})
	assert.Equal(t, StateAuthorized, lenient.State,
		"lenient passthrough compares the raw value as-is")

	strict := Evaluate(Input{
		Authenticated: true,
		User:          testUser("superstar"),
		RequiredRoles: []auth.Role{auth.Role("superstar")},
		Mapper:        auth.RoleMapper{Strict: true},
	})
	assert.Equal(t, StateUnauthorized, strict.State,
		"strict mode maps unexpected roles to unknown")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "authorized", StateAuthorized.String())
	assert.Equal(t, "invalid", State(99).String())
}
