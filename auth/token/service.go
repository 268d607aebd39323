// Package token issues and verifies the signed, time-bounded tokens that
// carry a FinTrust identity between the auth service and the resource API.
//
// Tokens are stateless: nothing is stored server-side and there is no
// revocation list, so a token stays valid until its expiry regardless of
// logout. Issuing twice for the same identity yields two independent,
// equally valid tokens.
package token

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token validity window.
const DefaultTTL = time.Hour

// ErrInvalidToken is returned for every verification failure: bad signature,
// expired token, malformed payload, missing subject. Collapsing the causes
// denies a forger feedback on which check tripped.
var ErrInvalidToken = errors.New("token: invalid or expired token")

// Claims is the token payload: subject carries the identity id.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Caller is the identity derived from a verified token for one request.
type Caller struct {
	Subject string
	Email   string
}

// Config configures the token service.
type Config struct {
	// Secret is the HMAC signing key. Must be non-empty after trimming;
	// issuer and verifier must be configured with the same value.
	Secret string
	// TTL is the token lifetime (default: 1h).
	TTL time.Duration
}

// Service issues and verifies HS256-signed tokens. It is stateless and safe
// for concurrent use.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. An empty or whitespace-only secret is
// rejected: callers treat that as fatal at startup, never at request time.
func NewService(cfg Config) (*Service, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a signed token binding the identity id and email, expiring
// TTL from now.
func (s *Service) Issue(id, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Email: email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// Verify validates signature, expiry, and payload shape, returning the
// caller identity. All failures collapse to ErrInvalidToken.
func (s *Service) Verify(tokenString string) (Caller, error) {
	if tokenString == "" {
		return Caller{}, ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return Caller{}, ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Caller{}, ErrInvalidToken
	}
	return Caller{Subject: claims.Subject, Email: claims.Email}, nil
}

func (s *Service) keyFunc(t *jwt.Token) (interface{}, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, fmt.Errorf("token: unexpected signing method: %s", t.Method.Alg())
	}
	return s.secret, nil
}
