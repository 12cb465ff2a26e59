package service

import (
	"errors"
	"time"
)

// ErrInvalidToken covers every token rejection: bad signature, unexpected algorithm,
// malformed structure, expiry, or a missing subject.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the verified content of a session token.
type Claims struct {
	Subject   string // Username of the account the token was issued to.
	ExpiresAt time.Time
}

// IssuedToken is a freshly signed bearer token.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless, signed session tokens.
type TokenService interface {
	// Issue signs a token for subject that expires after ttl. A non-positive ttl
	// selects the service's default lifetime.
	Issue(subject string, ttl time.Duration) (*IssuedToken, error)

	// Validate checks signature and expiry and returns the claims.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenTTL is the lifetime applied to tokens handed out at login.
	AccessTokenTTL() time.Duration
}
