package devauth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/pitchscout/scout-ui-api/internal/domain/auth"
	"github.com/pitchscout/scout-ui-api/internal/ports"
)

func TestNewProvider_Validation(t *testing.T) {
	_, err := NewProvider(Config{Email: "dev@example.com"})
	assert.Error(t, err)

	_, err = NewProvider(Config{UserID: "dev-user"})
	assert.Error(t, err)
}

func TestBeginExchangeVerify_RoundTrip(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev-user", Email: "dev@example.com", Role: "support_admin"})
	require.NoError(t, err)

	ctx := context.Background()

	authURL, state, nonce, err := p.Begin(ctx, ports.BeginInput{RedirectURL: "/"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(authURL, "/auth/callback?code=dev&state="))
	assert.Len(t, state, 24)
	assert.Len(t, nonce, 24)

	identity, token, err := p.Exchange(ctx, ports.ExchangeInput{Code: "dev", State: state, Nonce: nonce})
	require.NoError(t, err)
	assert.Equal(t, "dev-user", identity.UserID)
	assert.Equal(t, "support_admin", identity.RawRole)
	assert.NotEmpty(t, token)
	assert.False(t, domainauth.IsExpired(token), "minted token must carry a future expiry")

	verified, err := p.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, identity.UserID, verified.UserID)
	assert.Equal(t, identity.RawRole, verified.RawRole)
	assert.WithinDuration(t, identity.ExpiresAt, verified.ExpiresAt, time.Second)
}

func TestVerify_RejectsForeignToken(t *testing.T) {
	p1, err := NewProvider(Config{UserID: "dev-user", Email: "dev@example.com"})
	require.NoError(t, err)
	p2, err := NewProvider(Config{UserID: "dev-user", Email: "dev@example.com"})
	require.NoError(t, err)

	_, token, err := p1.Exchange(context.Background(), ports.ExchangeInput{Code: "dev"})
	require.NoError(t, err)

	// Each provider instance has its own secret.
	_, err = p2.Verify(context.Background(), token)
	assert.Error(t, err)
}
