package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
	"github.com/pitchscout/scout-ui-api/internal/domain/model"
	"github.com/pitchscout/scout-ui-api/internal/ports"
)

// ErrSessionExpired is returned when a session exists but its expiry has
// passed. Callers treat this differently from a missing session: the guard
// clears persisted auth artifacts before redirecting to login.
var ErrSessionExpired = errors.New("session expired")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	Sessions ports.SessionStore
	Users    ports.UserRepository
	Mapper   domainauth.RoleMapper
	Logger   *slog.Logger
}

// AuthService orchestrates authentication flows by coordinating the identity
// provider, role mapping, profile snapshots and session persistence.
type AuthService struct {
	provider ports.AuthProvider
	sessions ports.SessionStore
	users    ports.UserRepository
	mapper   domainauth.RoleMapper
	logger   *slog.Logger

	// verifyGroup collapses concurrent Verify calls for the same token into
	// a single round trip to the identity backend.
	verifyGroup singleflight.Group
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		provider: opts.Provider,
		sessions: opts.Sessions,
		users:    opts.Users,
		mapper:   opts.Mapper,
		logger:   logger.With("component", "auth_service"),
	}
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an authentication flow and returns the provider auth
// URL with state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLoginResult contains the result of completing a login flow.
type CompleteLoginResult struct {
	Session domainauth.Session
}

// CompleteLogin exchanges the authorization code for an identity, maps the
// raw role, persists a session and refreshes the local profile snapshot.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*CompleteLoginResult, error) {
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, token, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	session := s.buildSession(identity, token)
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	s.snapshotProfile(ctx, identity)

	return &CompleteLoginResult{Session: session}, nil
}

// GetSession retrieves a session by ID. Expired sessions are deleted on read
// and reported as ErrSessionExpired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(time.Now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Verify revalidates a bearer token against the identity backend and mints a
// fresh session from the answer. Concurrent calls with the same token share
// one backend round trip.
func (s *AuthService) Verify(ctx context.Context, token string) (*domainauth.Session, error) {
	if token == "" {
		return nil, errors.New("token is required")
	}
	if domainauth.IsExpired(token) {
		return nil, ErrSessionExpired
	}

	v, err, _ := s.verifyGroup.Do(token, func() (any, error) {
		identity, verifyErr := s.provider.Verify(ctx, token)
		if verifyErr != nil {
			return nil, fmt.Errorf("verify token: %w", verifyErr)
		}

		session := s.buildSession(identity, token)
		if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
			return nil, fmt.Errorf("save session: %w", saveErr)
		}
		s.snapshotProfile(ctx, identity)
		return &session, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domainauth.Session), nil
}

// Logout removes the session and tells the identity backend to end its side.
// The backend call is optimistic: local logout wins even when the IdP is
// unreachable.
func (s *AuthService) Logout(ctx context.Context, sessionID, token string) error {
	if sessionID != "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}

	if token != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := s.provider.EndSession(ctx, token); err != nil {
				s.logger.WarnContext(ctx, "provider logout failed", "err", err)
			}
		}()
	}

	return nil
}

func (s *AuthService) buildSession(identity domainauth.Identity, token string) domainauth.Session {
	return domainauth.Session{
		ID: uuid.NewString(),
		User: domainauth.User{
			ID:                identity.UserID,
			Email:             identity.Email,
			RawRole:           identity.RawRole,
			FirstName:         identity.FirstName,
			LastName:          identity.LastName,
			ProfilePictureURL: identity.ProfilePictureURL,
		},
		Role:      s.mapper.Map(identity.RawRole),
		Token:     token,
		ExpiresAt: identity.ExpiresAt,
	}
}

// snapshotProfile refreshes the locally cached profile. Failures are logged,
// not returned: login must not break because the snapshot table is down.
func (s *AuthService) snapshotProfile(ctx context.Context, identity domainauth.Identity) {
	if s.users == nil {
		return
	}
	p := &model.Profile{
		ID:                identity.UserID,
		Email:             identity.Email,
		RawRole:           identity.RawRole,
		FirstName:         identity.FirstName,
		LastName:          identity.LastName,
		ProfilePictureURL: identity.ProfilePictureURL,
	}
	if err := s.users.Upsert(ctx, p); err != nil {
		s.logger.WarnContext(ctx, "profile snapshot failed", "user_id", identity.UserID, "err", err)
	}
}
