package auth

// legacyRoles maps role strings from the central identity system (including
// names from the pre-migration naming scheme) onto canonical roles. Raw
// values absent from this table are handled by the mapper's mode.
//
//nolint:gochecknoglobals // static read-only lookup table
var legacyRoles = map[string]Role{
	"super_admin":     RoleAdmin,
	"support_admin":   RoleAdmin,
	"read_only_admin": RoleAdmin,
	"subscriber":      RoleScout,
	"limited_user":    RoleScout,
	"admin":           RoleAdmin,
	"player":          RolePlayer,
	"scout":           RoleScout,
}

// RoleMapper normalizes raw identity-system role strings into canonical
// roles. The zero value is the lenient mapper: raw values not in the legacy
// table pass through unchanged, preserving the historical behavior where an
// unexpected backend role string is compared as-is. Strict mode maps unknown
// values to RoleUnknown so callers are forced to handle them.
type RoleMapper struct {
	Strict bool
}

// Map returns the canonical role for a raw role string. It is total and
// deterministic: every input yields a value.
func (m RoleMapper) Map(raw string) Role {
	if role, ok := legacyRoles[raw]; ok {
		return role
	}
	if m.Strict {
		return RoleUnknown
	}
	return Role(raw)
}

// MapRole maps a raw role string with the default lenient mapper.
func MapRole(raw string) Role {
	return RoleMapper{}.Map(raw)
}
