package service

import (
	"time"

	"taskboard/internal/errors"
)

// Token verification failure kinds. They are distinct so callers can tell a
// re-login prompt (expired) apart from a corrupt or forged token (invalid).
var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

// TokenClaims is the identity a verified token asserts.
type TokenClaims struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, time-limited credentials. It is
// stateless: verification needs no database round trip.
type TokenService interface {
	// Issue produces an opaque signed string encoding the user ID and an
	// expiry ttl from now.
	Issue(userID int64, ttl time.Duration) (string, error)

	// Verify validates the token's signature and expiry. It fails with
	// ErrTokenExpired for a structurally valid but stale token and with
	// ErrTokenInvalid for anything else.
	Verify(tokenString string) (*TokenClaims, error)
}
