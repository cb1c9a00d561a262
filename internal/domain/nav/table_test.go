package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/pitchscout/scout-ui-api/internal/domain/auth"
)

func TestNavigationFor_Tables(t *testing.T) {
	admin := NavigationFor(auth.RoleAdmin)
	assert.Equal(t, "Management", admin[1].Title)
	assert.Equal(t, "/admin/players", admin[1].Items[0].Path)

	player := NavigationFor(auth.RolePlayer)
	assert.Equal(t, "Performance", player[1].Title)
	assert.Equal(t, "Account", player[2].Title)

	scout := NavigationFor(auth.RoleScout)
	assert.Equal(t, "Discovery", scout[1].Title)
	assert.Equal(t, "Tools", scout[2].Title)
}

func TestNavigationFor_UnrecognizedFallsBackToPlayer(t *testing.T) {
	assert.Equal(t, NavigationFor(auth.RolePlayer), NavigationFor(auth.RoleUnknown))
	assert.Equal(t, NavigationFor(auth.RolePlayer), NavigationFor(auth.Role("analyst")))
}

func TestNavigationFor_PathsUniquePerRole(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleAdmin, auth.RolePlayer, auth.RoleScout} {
		t.Run(string(role), func(t *testing.T) {
			seen := map[string]bool{}
			for _, sec := range NavigationFor(role) {
				for _, item := range sec.Items {
					assert.False(t, seen[item.Path], "duplicate path %s", item.Path)
					seen[item.Path] = true
				}
			}
		})
	}
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", DashboardPath(auth.RoleAdmin))
	assert.Equal(t, "/player/dashboard", DashboardPath(auth.RolePlayer))
	assert.Equal(t, "/scout/dashboard", DashboardPath(auth.RoleScout))
	assert.Equal(t, LoginPath, DashboardPath(auth.RoleUnknown))
	assert.Equal(t, LoginPath, DashboardPath(auth.Role("")))
}

func TestDashboardPathForRaw_AppliesRoleMapping(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", DashboardPathForRaw("support_admin"))
	assert.Equal(t, "/scout/dashboard", DashboardPathForRaw("subscriber"))
	assert.Equal(t, "/player/dashboard", DashboardPathForRaw("player"))
	assert.Equal(t, LoginPath, DashboardPathForRaw("analyst"))
}

// The dashboard path for each role must appear in that role's navigation
// table, so the sidebar and the redirect resolver cannot drift apart.
func TestDashboardPath_RoundTripsWithNavigation(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleAdmin, auth.RolePlayer, auth.RoleScout} {
		t.Run(string(role), func(t *testing.T) {
			want := DashboardPath(role)
			found := false
			for _, sec := range NavigationFor(role) {
				for _, item := range sec.Items {
					if item.Path == want {
						found = true
					}
				}
			}
			assert.True(t, found, "dashboard path %s missing from %s navigation", want, role)
		})
	}
}
