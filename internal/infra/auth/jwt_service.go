package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"patientapp/config"
	"patientapp/internal/domain/service"
)

const (
	// AccessTokenTTL is the lifetime of tokens issued at login.
	AccessTokenTTL = 30 * time.Minute

	// DefaultTokenTTL applies when Issue is called without a duration.
	DefaultTokenTTL = 15 * time.Minute
)

// TokenType is returned next to every access token.
const TokenType = "bearer"

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService reads the signing secret and access lifetime from configuration.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	accessTTL := AccessTokenTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		accessTTL = cfg.Auth.AccessTokenTTL
	}

	svc, err := newJWTService(cfg.SecretKey.Access, accessTTL, time.Now)
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func newJWTService(secret string, accessTTL time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		now:       now,
	}, nil
}

// Issue signs {sub, exp} with the configured secret.
func (s *jwtService) Issue(subject string, ttl time.Duration) (*service.IssuedToken, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	expiresAt := jwt.NewNumericDate(ceilToSecond(s.now().Add(ttl)))
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: expiresAt,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		ExpiresAt: expiresAt.Time,
	}, nil
}

// ceilToSecond rounds t up to the next whole second. exp is carried in whole
// seconds, so truncating would end the token before issue time plus ttl.
func ceilToSecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if truncated.Equal(t) {
		return truncated
	}

	return truncated.Add(time.Second)
}

// Validate parses tokenString and returns its claims. Tokens signed with another
// secret or algorithm, malformed tokens, tokens without exp or sub, and tokens at or
// past their expiry are all rejected with service.ErrInvalidToken.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, errors.WithStack(service.ErrInvalidToken)
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidToken, "token has no subject")
	}

	return &service.Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// AccessTokenTTL returns the configured lifetime for login tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
