package devauth

// Package devauth provides a simple, config-driven AuthProvider for local
// development. It short-circuits the OAuth flow by redirecting back to our
// own callback with locally generated state and nonce, and mints real HS256
// tokens so the UI's expiry handling behaves exactly as in production.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
	"github.com/pitchscout/scout-ui-api/internal/ports"
)

// Config controls the dev auth provider behavior. Role takes the raw role
// string, so legacy values like "support_admin" can be exercised locally.
type Config struct {
	UserID          string
	Email           string
	Role            string
	FirstName       string
	LastName        string
	SessionDuration time.Duration // default 8h when zero
}

// Provider implements ports.AuthProvider for local development.
type Provider struct {
	cfg    Config
	secret []byte
}

// NewProvider constructs a dev auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.UserID == "" {
		return nil, errors.New("dev auth: UserID is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = 8 * time.Hour
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("dev auth: generate signing secret: %w", err)
	}

	return &Provider{cfg: cfg, secret: secret}, nil
}

// Begin returns a local callback URL and cryptographically secure state and
// nonce.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}
	// The standard handler expects GET /auth/callback?code=...&state=...
	authURL := "/auth/callback?code=dev&state=" + state
	return authURL, state, nonce, nil
}

// Exchange ignores the provided code (validation is handled by the handler)
// and returns the configured identity with a freshly minted token.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, string, error) {
	expiresAt := time.Now().Add(p.cfg.SessionDuration)
	token, err := p.mintToken(expiresAt)
	if err != nil {
		return domainauth.Identity{}, "", err
	}
	return p.identity(expiresAt), token, nil
}

// Verify accepts any token this provider minted that has not expired.
func (p *Provider) Verify(_ context.Context, token string) (domainauth.Identity, error) {
	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("dev auth: verify token: %w", err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return domainauth.Identity{}, errors.New("dev auth: token missing expiry")
	}
	return p.identity(exp.Time), nil
}

// EndSession is a no-op locally.
func (p *Provider) EndSession(context.Context, string) error { return nil }

func (p *Provider) identity(expiresAt time.Time) domainauth.Identity {
	return domainauth.Identity{
		UserID:    p.cfg.UserID,
		Email:     p.cfg.Email,
		RawRole:   p.cfg.Role,
		FirstName: p.cfg.FirstName,
		LastName:  p.cfg.LastName,
		ExpiresAt: expiresAt,
	}
}

func (p *Provider) mintToken(expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   p.cfg.UserID,
		"email": p.cfg.Email,
		"role":  p.cfg.Role,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("dev auth: sign token: %w", err)
	}
	return token, nil
}

func randomString(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	bLen := (n*3 + 3) / 4
	b := make([]byte, bLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	if len(s) < n {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:n], nil
}
