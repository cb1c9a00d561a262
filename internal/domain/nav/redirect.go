package nav

import "github.com/pitchscout/scout-ui-api/internal/domain/auth"

// LoginPath is where unauthenticated (or unplaceable) users are sent.
const LoginPath = "/login"

// DashboardPath returns the canonical dashboard path for a mapped role.
// Absent or unrecognized roles resolve to the login path. Used for the
// post-login redirect, the "/" handler, and "go home" links on error pages.
func DashboardPath(role auth.Role) string {
	switch role {
	case auth.RoleAdmin:
		return "/admin/dashboard"
	case auth.RolePlayer:
		return "/player/dashboard"
	case auth.RoleScout:
		return "/scout/dashboard"
	default:
		return LoginPath
	}
}

// DashboardPathForRaw applies the default role mapping before resolving,
// so "support_admin" lands on the admin dashboard and "subscriber" on the
// scout dashboard.
func DashboardPathForRaw(rawRole string) string {
	return DashboardPath(auth.MapRole(rawRole))
}
