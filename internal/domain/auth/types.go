package auth

// Package auth contains domain-level types for identity and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role is a canonical application role. The UI and route gating branch only
// on these values; raw identity-system role strings must pass through
// RoleMapper first.
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
	RoleScout  Role = "scout"

	// RoleUnknown marks a raw role the mapper could not place. It is only
	// produced in strict mapping mode; lenient mode passes raw values
	// through unchanged for backward compatibility.
	RoleUnknown Role = "unknown"
)

// Canonical reports whether r is one of the three closed canonical roles.
func (r Role) Canonical() bool {
	return r == RoleAdmin || r == RolePlayer || r == RoleScout
}

// User is the authenticated principal as known to the UI layer.
// RawRole keeps the identity system's original role string; Role-based
// decisions must use RoleMapper on it.
type User struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	RawRole           string `json:"role"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

// Identity is what an identity-provider adapter returns after verifying a
// bearer token or completing a login exchange.
type Identity struct {
	UserID            string
	Email             string
	RawRole           string
	FirstName         string
	LastName          string
	ProfilePictureURL string
	ExpiresAt         time.Time // absolute expiry from the IdP token
}

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session identifier. Token carries the bearer token the
// session was established from so expiry re-checks stay possible.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	Role      Role      `json:"mapped_role"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's absolute expiry has passed.
func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }
