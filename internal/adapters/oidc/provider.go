package oidc

// Package oidc implements the AuthProvider port against the platform's
// central identity system via OIDC/OAuth2.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
	"github.com/pitchscout/scout-ui-api/internal/ports"
)

// Provider implements ports.AuthProvider using OIDC/OAuth2.
type Provider struct {
	config     *oauth2.Config
	logoutURL  string
	httpClient *http.Client

	oidcProvider *gooidc.Provider
	verifier     *gooidc.IDTokenVerifier
}

// ProviderConfig holds configuration for the OIDC provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scope        string
	DiscoveryURL string
	LogoutURL    string
	HTTPClient   *http.Client // Optional, defaults to a 30s-timeout client
}

// NewProvider creates a new OIDC provider. It performs a single discovery
// fetch against the issuer.
func NewProvider(config ProviderConfig) (*Provider, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if config.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if config.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}
	if config.DiscoveryURL == "" {
		return nil, errors.New("discovery URL is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	p := &Provider{
		logoutURL:  config.LogoutURL,
		httpClient: httpClient,
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(config.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	issuer = strings.TrimSuffix(issuer, ".well-known/openid-configuration")
	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}
	p.oidcProvider = op
	p.verifier = op.Verifier(&gooidc.Config{ClientID: config.ClientID})

	p.config = &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURL,
		Scopes:       strings.Fields(config.Scope),
		Endpoint:     op.Endpoint(),
	}

	return p, nil
}

// Begin starts the login flow with cryptographically secure state and nonce.
func (p *Provider) Begin(_ context.Context, in ports.BeginInput) (string, string, string, error) {
	if in.RedirectURL == "" {
		return "", "", "", errors.New("redirect URL is required")
	}

	state, err := generateRandomString(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}

	nonce, err := generateRandomString(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}

	// Don't override redirect_uri here; it must match the configured
	// RedirectURL exactly.
	authURL := p.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)

	return authURL, state, nonce, nil
}

// Exchange completes the login flow. The returned bearer token is the raw
// ID token (a JWT carrying the expiry claim the UI's proactive expiry check
// reads), falling back to the access token when the provider issued none.
func (p *Provider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, string, error) {
	if in.Code == "" {
		return domainauth.Identity{}, "", errors.New("authorization code is required")
	}
	if in.State == "" {
		return domainauth.Identity{}, "", errors.New("state is required")
	}
	if in.Nonce == "" {
		return domainauth.Identity{}, "", errors.New("nonce is required")
	}

	token, err := p.config.Exchange(ctx, in.Code)
	if err != nil {
		return domainauth.Identity{}, "", fmt.Errorf("exchange code for token: %w", err)
	}

	rawID, _ := token.Extra("id_token").(string)
	bearer := rawID
	if bearer == "" {
		bearer = token.AccessToken
	}

	identity, err := p.identityFromTokens(ctx, token, rawID, in.Nonce)
	if err != nil {
		return domainauth.Identity{}, "", err
	}

	return identity, bearer, nil
}

// Verify resolves a previously issued bearer token to its identity. ID
// tokens are verified locally against the provider keys; opaque access
// tokens fall through to the userinfo endpoint.
func (p *Provider) Verify(ctx context.Context, token string) (domainauth.Identity, error) {
	if token == "" {
		return domainauth.Identity{}, errors.New("token is required")
	}

	if idTok, err := p.verifier.Verify(ctx, token); err == nil {
		var claims identityClaims
		if claimsErr := idTok.Claims(&claims); claimsErr != nil {
			return domainauth.Identity{}, fmt.Errorf("parse id_token claims: %w", claimsErr)
		}
		return claims.identity(idTok.Expiry), nil
	}

	return p.identityFromUserInfo(ctx, token, time.Now().Add(time.Hour))
}

// EndSession performs provider-side logout, best effort. Callers redirect
// before awaiting it.
func (p *Provider) EndSession(ctx context.Context, token string) error {
	if p.logoutURL == "" {
		return nil
	}

	u, err := url.Parse(p.logoutURL)
	if err != nil {
		return fmt.Errorf("parse logout URL: %w", err)
	}
	q := u.Query()
	if token != "" {
		q.Set("id_token_hint", token)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build logout request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider logout: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("provider logout: status %d", resp.StatusCode)
	}
	return nil
}

// identityClaims is the claim shape the scouting identity system issues.
// "role" carries the raw backend role string, possibly from the legacy
// naming scheme; role mapping is the service layer's job.
type identityClaims struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
	Nonce      string `json:"nonce"`
}

func (c identityClaims) identity(expiresAt time.Time) domainauth.Identity {
	return domainauth.Identity{
		UserID:            c.Sub,
		Email:             c.Email,
		RawRole:           c.Role,
		FirstName:         c.GivenName,
		LastName:          c.FamilyName,
		ProfilePictureURL: c.Picture,
		ExpiresAt:         expiresAt,
	}
}

func (p *Provider) identityFromTokens(
	ctx context.Context,
	token *oauth2.Token,
	rawID string,
	expectedNonce string,
) (domainauth.Identity, error) {
	expiresAt := time.Now().Add(time.Hour)
	if !token.Expiry.IsZero() {
		expiresAt = token.Expiry
	}

	if rawID != "" && p.hasOpenIDScope() {
		idTok, err := p.verifier.Verify(ctx, rawID)
		if err != nil {
			return domainauth.Identity{}, fmt.Errorf("verify id_token: %w", err)
		}
		var claims identityClaims
		if claimsErr := idTok.Claims(&claims); claimsErr != nil {
			return domainauth.Identity{}, fmt.Errorf("parse id_token claims: %w", claimsErr)
		}
		if expectedNonce != "" && claims.Nonce != expectedNonce {
			return domainauth.Identity{}, errors.New("invalid nonce")
		}
		if !idTok.Expiry.IsZero() {
			expiresAt = idTok.Expiry
		}
		identity := claims.identity(expiresAt)
		if identity.UserID != "" && identity.Email != "" {
			return identity, nil
		}
	}

	return p.identityFromUserInfo(ctx, token.AccessToken, expiresAt)
}

func (p *Provider) identityFromUserInfo(
	ctx context.Context,
	accessToken string,
	expiresAt time.Time,
) (domainauth.Identity, error) {
	ui, err := p.oidcProvider.UserInfo(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("fetch user info: %w", err)
	}
	var claims identityClaims
	if claimsErr := ui.Claims(&claims); claimsErr != nil {
		return domainauth.Identity{}, fmt.Errorf("decode user info: %w", claimsErr)
	}
	identity := claims.identity(expiresAt)
	if identity.UserID == "" {
		identity.UserID = ui.Subject
	}
	if identity.Email == "" {
		identity.Email = ui.Email
	}
	return identity, nil
}

// generateRandomString generates a cryptographically secure URL-safe random
// string of exact length.
func generateRandomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	nBytes := (length*3 + 3) / 4
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	if len(s) < length {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:length], nil
}

// hasOpenIDScope reports whether the configured scopes include "openid".
func (p *Provider) hasOpenIDScope() bool {
	for _, sc := range p.config.Scopes {
		if sc == "openid" {
			return true
		}
	}
	return false
}
