package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapRole_LegacyTable(t *testing.T) {
	tests := []struct {
		raw      string
		expected Role
	}{
		{"super_admin", RoleAdmin},
		{"support_admin", RoleAdmin},
		{"read_only_admin", RoleAdmin},
		{"subscriber", RoleScout},
		{"limited_user", RoleScout},
		{"admin", RoleAdmin},
		{"player", RolePlayer},
		{"scout", RoleScout},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapRole(tt.raw))
		})
	}
}

func TestMapRole_LenientPassthrough(t *testing.T) {
	// Unmapped values pass through unchanged in the default mode.
	assert.Equal(t, Role("analyst"), MapRole("analyst"))
	assert.Equal(t, Role(""), MapRole(""))
}

func TestRoleMapper_Strict(t *testing.T) {
	m := RoleMapper{Strict: true}

	assert.Equal(t, RoleUnknown, m.Map("analyst"))
	assert.Equal(t, RoleUnknown, m.Map(""))
	// Known values still map normally.
	assert.Equal(t, RoleAdmin, m.Map("support_admin"))
	assert.Equal(t, RoleScout, m.Map("subscriber"))
}

func TestRole_Canonical(t *testing.T) {
	assert.True(t, RoleAdmin.Canonical())
	assert.True(t, RolePlayer.Canonical())
	assert.True(t, RoleScout.Canonical())
	assert.False(t, RoleUnknown.Canonical())
	assert.False(t, Role("analyst").Canonical())
}
