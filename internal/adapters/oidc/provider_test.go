package oidc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProviderConfig
	}{
		{"missing client id", ProviderConfig{ClientSecret: "s", RedirectURL: "r", DiscoveryURL: "d"}},
		{"missing client secret", ProviderConfig{ClientID: "c", RedirectURL: "r", DiscoveryURL: "d"}},
		{"missing redirect url", ProviderConfig{ClientID: "c", ClientSecret: "s", DiscoveryURL: "d"}},
		{"missing discovery url", ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "r"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestIdentityClaims_Identity(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	claims := identityClaims{
		Sub:        "u-42",
		Email:      "scout@example.com",
		Role:       "subscriber",
		GivenName:  "Alex",
		FamilyName: "Mercer",
		Picture:    "https://cdn.example.com/u-42.png",
	}

	id := claims.identity(exp)

	assert.Equal(t, "u-42", id.UserID)
	assert.Equal(t, "scout@example.com", id.Email)
	assert.Equal(t, "subscriber", id.RawRole, "raw role passes through unmapped")
	assert.Equal(t, "Alex", id.FirstName)
	assert.Equal(t, "Mercer", id.LastName)
	assert.Equal(t, "https://cdn.example.com/u-42.png", id.ProfilePictureURL)
	assert.Equal(t, exp, id.ExpiresAt)
}

func TestEndSession(t *testing.T) {
	var gotHint string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHint = r.URL.Query().Get("id_token_hint")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := &Provider{logoutURL: srv.URL + "/logout", httpClient: srv.Client()}

	err := p.EndSession(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", gotHint)
}

func TestEndSession_NoLogoutURLIsNoop(t *testing.T) {
	p := &Provider{httpClient: http.DefaultClient}
	assert.NoError(t, p.EndSession(context.Background(), "tok"))
}

func TestEndSession_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := &Provider{logoutURL: srv.URL, httpClient: srv.Client()}

	assert.Error(t, p.EndSession(context.Background(), "tok"))
}

func TestGenerateRandomString(t *testing.T) {
	for _, n := range []int{0, 1, 24, 32, 64} {
		s, err := generateRandomString(n)
		require.NoError(t, err)
		assert.Len(t, s, n)
	}

	a, err := generateRandomString(32)
	require.NoError(t, err)
	b, err := generateRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
