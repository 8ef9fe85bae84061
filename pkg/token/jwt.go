// Package token issues and validates HS256 access tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"fundo-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("token: invalid")

type Config struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// Claims carries the username and role next to the registered claims.
// Subject mirrors Username; ID is the jti.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Signer struct {
	cfg Config
	now func() time.Time
}

func NewSigner(cfg Config) (*Signer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: empty secret")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("token: ttl must be positive, got %s", cfg.TTL)
	}
	return &Signer{cfg: cfg, now: time.Now}, nil
}

// WithClock swaps the time source, mostly for tests.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	cp := *s
	cp.now = now
	return &cp
}

func (s *Signer) Sign(username, role string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.NewTokenID(),
			Subject:   username,
			Issuer:    s.cfg.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
		Username: username,
		Role:     role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
}

// Parse checks signature, algorithm, issuer, audience and expiry with no leeway.
func (s *Signer) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) { return []byte(s.cfg.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tok.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
