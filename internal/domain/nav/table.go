package nav

// Package nav holds the role-indexed navigation tables and the pure helpers
// derived from them (breadcrumbs, dashboard redirects). The tables are the
// single source of truth for "what role sees what": sidebar rendering,
// breadcrumb labels, and post-login redirects all read from here rather than
// branching on roles in handlers.

import (
	"github.com/pitchscout/scout-ui-api/internal/domain/auth"
)

// Item is one navigation entry. Icon is a logical icon key resolved by the
// frontend; Badge is an optional count rendered next to the name.
type Item struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Icon     string `json:"icon"`
	Badge    int    `json:"badge,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Section groups ordered items under an optional title.
type Section struct {
	Title string `json:"title,omitempty"`
	Items []Item `json:"items"`
}

// Static per-role tables. Paths are unique within each role's table; the
// tables are read-only after init.
//
//nolint:gochecknoglobals // static read-only navigation configuration
var (
	adminSections = []Section{
		{Items: []Item{
			{Name: "Dashboard", Path: "/admin/dashboard", Icon: "home"},
		}},
		{Title: "Management", Items: []Item{
			{Name: "Players", Path: "/admin/players", Icon: "users"},
			{Name: "Teams", Path: "/admin/teams", Icon: "shield"},
			{Name: "Matches", Path: "/admin/matches", Icon: "calendar"},
			{Name: "Users", Path: "/admin/users", Icon: "user-cog"},
		}},
		{Title: "Analytics & Settings", Items: []Item{
			{Name: "Analytics", Path: "/admin/analytics", Icon: "bar-chart"},
			{Name: "Settings", Path: "/admin/settings", Icon: "settings"},
		}},
	}

	playerSections = []Section{
		{Items: []Item{
			{Name: "Dashboard", Path: "/player/dashboard", Icon: "home"},
		}},
		{Title: "Performance", Items: []Item{
			{Name: "Stats", Path: "/player/stats", Icon: "bar-chart"},
			{Name: "Matches", Path: "/player/matches", Icon: "calendar"},
			{Name: "Highlights", Path: "/player/highlights", Icon: "video"},
		}},
		{Title: "Account", Items: []Item{
			{Name: "Profile", Path: "/player/profile", Icon: "user"},
			{Name: "Settings", Path: "/player/settings", Icon: "settings"},
		}},
	}

	scoutSections = []Section{
		{Items: []Item{
			{Name: "Dashboard", Path: "/scout/dashboard", Icon: "home"},
		}},
		{Title: "Discovery", Items: []Item{
			{Name: "Players", Path: "/scout/players", Icon: "search"},
			{Name: "Matches", Path: "/scout/matches", Icon: "calendar"},
		}},
		{Title: "Tools", Items: []Item{
			{Name: "Reports", Path: "/scout/reports", Icon: "file-text"},
			{Name: "Favorites", Path: "/scout/favorites", Icon: "star"},
		}},
		{Title: "Account", Items: []Item{
			{Name: "Profile", Path: "/scout/profile", Icon: "user"},
			{Name: "Settings", Path: "/scout/settings", Icon: "settings"},
		}},
	}
)

// NavigationFor returns the ordered navigation sections for a canonical
// role. Callers must map raw role strings through auth.RoleMapper first.
// Unrecognized roles fall back to the player table; that default is part of
// the contract, not a silent bug.
func NavigationFor(role auth.Role) []Section {
	switch role {
	case auth.RoleAdmin:
		return adminSections
	case auth.RoleScout:
		return scoutSections
	case auth.RolePlayer:
		return playerSections
	default:
		return playerSections
	}
}
