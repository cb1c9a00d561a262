package guard

// Package guard implements the route-protection decision engine. Evaluate is
// a pure function over the current session snapshot; the HTTP layer turns
// its decisions into redirects or rendered content. Keeping the engine free
// of I/O makes the precedence rules directly testable.

import (
	"slices"

	"github.com/pitchscout/scout-ui-api/internal/domain/auth"
	"github.com/pitchscout/scout-ui-api/internal/domain/nav"
)

// State is the outcome of one guard evaluation.
type State int

const (
	// StateLoading means session resolution is still in flight and nothing
	// should be decided yet.
	StateLoading State = iota
	// StateUnauthenticated means no usable session exists; the user is sent
	// to the login page with the attempted location preserved.
	StateUnauthenticated
	// StateExpired means a cached user exists but the bearer token's expiry
	// has passed; all persisted auth artifacts must be purged before the
	// login redirect.
	StateExpired
	// StateUnauthorized means the user is authenticated but their mapped
	// role is not in the required set.
	StateUnauthorized
	// StateAuthorized means the protected content may be served unchanged.
	StateAuthorized
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateExpired:
		return "expired"
	case StateUnauthorized:
		return "unauthorized"
	case StateAuthorized:
		return "authorized"
	default:
		return "invalid"
	}
}

// AccessDeniedPath is where role-mismatch redirects land.
const AccessDeniedPath = "/403"

// Human-readable messages carried alongside redirects so the destination
// page can explain why the user arrived.
const (
	MsgLoginRequired  = "Please log in to continue."
	MsgSessionExpired = "Your session has expired. Please log in again."
	MsgAccessDenied   = "You do not have permission to view this page."
)

// Input is the session snapshot a guard evaluation runs against.
type Input struct {
	// SessionLoading is true while the initial session resolution (or an
	// explicit re-check) is still in flight.
	SessionLoading bool
	// Authenticated mirrors the session state's flag; it is false whenever
	// User is absent or known-invalid.
	Authenticated bool
	// User is the cached user, nil when unauthenticated.
	User *auth.User
	// Token is the persisted bearer token, empty when none is stored. Its
	// expiry is re-checked even when User is populated: a stale client-side
	// user object never overrides an expired token.
	Token string
	// RequiredRoles restricts access to the listed canonical roles. Empty
	// means any authenticated user.
	RequiredRoles []auth.Role
	// AttemptedPath is the location the user was trying to reach.
	AttemptedPath string
	// Mapper normalizes the user's raw role. The zero value is the lenient
	// production mapper.
	Mapper auth.RoleMapper
	// ExpiredFn overrides the token expiry check in tests; nil uses
	// auth.IsExpired against wall-clock time.
	ExpiredFn func(token string) bool
}

// DenyContext carries enough detail for the access-denied page (and support
// staff) to diagnose a role mismatch.
type DenyContext struct {
	RequiredRoles []auth.Role `json:"required_roles"`
	UserRole      string      `json:"user_role"`
	AttemptedPath string      `json:"attempted_path"`
}

// Decision is the result of evaluating the guard rules.
type Decision struct {
	State State
	// RedirectPath is set for the three redirecting states. Redirects are
	// replace-style navigations: they must not grow the history stack.
	RedirectPath string
	// Message is the human-readable reason shown on the redirect target.
	Message string
	// ClearArtifacts instructs the caller to purge all persisted auth
	// artifacts (access token, refresh token, cached user) before
	// redirecting.
	ClearArtifacts bool
	// Deny is populated for StateUnauthorized.
	Deny *DenyContext
}

// Evaluate runs the protection rules in contract order — first match wins.
// The order decides which redirect a user sees, so it is part of the
// observable behavior, not an implementation detail:
//
//  1. session still loading with no cached user → Loading
//  2. not authenticated or no user → Unauthenticated
//  3. stored token present and expired → Expired (purge artifacts)
//  4. mapped role outside a non-empty required set → Unauthorized
//  5. otherwise → Authorized
//
// Evaluate is idempotent and side-effect free; callers own the one-shot
// session-verify triggered when a redirecting state is entered without a
// cached user.
func Evaluate(in Input) Decision {
	if in.SessionLoading && in.User == nil {
		return Decision{State: StateLoading}
	}

	if !in.Authenticated || in.User == nil {
		return Decision{
			State:        StateUnauthenticated,
			RedirectPath: nav.LoginPath,
			Message:      MsgLoginRequired,
		}
	}

	if in.Token != "" && in.expired(in.Token) {
		return Decision{
			State:          StateExpired,
			RedirectPath:   nav.LoginPath,
			Message:        MsgSessionExpired,
			ClearArtifacts: true,
		}
	}

	if len(in.RequiredRoles) > 0 {
		role := in.Mapper.Map(in.User.RawRole)
		if !slices.Contains(in.RequiredRoles, role) {
			return Decision{
				State:        StateUnauthorized,
				RedirectPath: AccessDeniedPath,
				Message:      MsgAccessDenied,
				Deny: &DenyContext{
					RequiredRoles: in.RequiredRoles,
					UserRole:      in.User.RawRole,
					AttemptedPath: in.AttemptedPath,
				},
			}
		}
	}

	return Decision{State: StateAuthorized}
}

func (in Input) expired(token string) bool {
	if in.ExpiredFn != nil {
		return in.ExpiredFn(token)
	}
	return auth.IsExpired(token)
}
