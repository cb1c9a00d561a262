package ports

// Package ports defines interfaces (hexagonal ports) for auth and scouting
// data behavior. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
)

// BeginInput carries inputs for initiating a login flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes authentication against the identity
// backend, and verifies previously issued bearer tokens for silent session
// resume.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an
	// opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and
	// returns the authenticated identity plus the bearer token it minted.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, string, error)

	// Verify resolves a bearer token to the identity it belongs to. Used by
	// the one-shot session resume after a hard page reload; failures leave
	// the caller unauthenticated, they are never fatal.
	Verify(ctx context.Context, token string) (domainauth.Identity, error)

	// EndSession performs the provider-side logout for the token, best
	// effort. Callers redirect before awaiting it.
	EndSession(ctx context.Context, token string) error
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
