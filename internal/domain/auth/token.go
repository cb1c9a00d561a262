package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsExpired reports whether the bearer token's embedded expiry claim has
// passed. See IsExpiredAt.
func IsExpired(token string) bool {
	return IsExpiredAt(token, time.Now())
}

// IsExpiredAt decodes the token's payload segment without verifying the
// signature and compares its "exp" claim against now. The check is fail
// closed: a token that cannot be decoded, has the wrong segment count, or
// lacks a numeric expiry claim is reported expired — decoding failure must
// never read as "valid forever".
//
// The client-side expiry check is a courtesy to redirect proactively; real
// authorization always happens against the backend, so skipping signature
// verification here is deliberate.
func IsExpiredAt(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return !now.Before(exp.Time)
}
