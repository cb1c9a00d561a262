package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestIsExpiredAt_FutureExpiry(t *testing.T) {
	now := time.Now()
	token := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})

	assert.False(t, IsExpiredAt(token, now))
}

func TestIsExpiredAt_PastExpiry(t *testing.T) {
	now := time.Now()
	token := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Second).Unix()})

	assert.True(t, IsExpiredAt(token, now))
}

func TestIsExpiredAt_ExpiryEqualsNow(t *testing.T) {
	// now >= exp counts as expired; no clock-skew tolerance.
	now := time.Unix(1700000000, 0)
	token := signedToken(t, jwt.MapClaims{"exp": now.Unix()})

	assert.True(t, IsExpiredAt(token, now))
}

func TestIsExpiredAt_Malformed(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a token", "garbage"},
		{"wrong segment count", "a.b"},
		{"four segments", "a.b.c.d"},
		{"payload not base64", "eyJhbGciOiJIUzI1NiJ9.!!!.sig"},
		{"missing exp claim", signedToken(t, jwt.MapClaims{"sub": "user-1"})},
		{"non-numeric exp", signedToken(t, jwt.MapClaims{"exp": "tomorrow"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsExpiredAt(tt.token, now), "malformed tokens must fail closed")
		})
	}
}
