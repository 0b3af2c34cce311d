package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/focusflow/focusflow/internal/api/respond"
)

type ctxKey struct{}

// ExtractBearerToken extracts the bearer token from the Authorization header.
// Returns ErrMissingToken when the header is absent or not in
// "Bearer <token>" form.
func ExtractBearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", ErrMissingToken
	}
	return parts[1], nil
}

// RequireAuth gates a handler behind bearer-token verification. A
// missing header yields 401; a bad signature or expired token yields
// 403. On success the decoded claims are attached to the request
// context for the duration of that request.
func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, err := ExtractBearerToken(r)
		if err != nil {
			respond.WriteError(w, http.StatusUnauthorized, "no token provided")
			return
		}

		claims, err := a.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				respond.WriteError(w, http.StatusForbidden, "token expired")
				return
			}
			log.Debug().Err(err).Str("remote", r.RemoteAddr).Msg("token verification failed")
			respond.WriteError(w, http.StatusForbidden, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// WithClaims returns a child context carrying verified claims.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// ClaimsFromContext retrieves the verified claims set by RequireAuth.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*Claims)
	return c, ok
}
