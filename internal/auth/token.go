package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/focusflow/focusflow/internal/model"
)

// Claims are the identity claims embedded in every issued token.
type Claims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Authenticator issues and verifies HS256 bearer tokens. It holds no
// per-session state; a token is self-contained for its lifetime.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// New constructs an Authenticator. The secret is the only hard
// requirement; running without one is a configuration error.
func New(secret string, ttl time.Duration) (*Authenticator, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Authenticator{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying u's public identity and an absolute
// expiry ttl from now.
func (a *Authenticator) Issue(u *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify parses and validates a token string, returning its claims.
// Expired tokens are reported as ErrTokenExpired; any other failure as
// ErrInvalidToken.
func (a *Authenticator) Verify(tokenStr string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// TTL returns the configured token lifetime.
func (a *Authenticator) TTL() time.Duration { return a.ttl }
