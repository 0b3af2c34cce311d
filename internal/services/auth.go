package services

import (
	"context"

	"github.com/focusflow/focusflow/internal/auth"
	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/store"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	store      store.Store
	tokens     *auth.Authenticator
	bcryptCost int
}

func NewAuthService(s store.Store, tokens *auth.Authenticator, bcryptCost int) *AuthService {
	return &AuthService{store: s, tokens: tokens, bcryptCost: bcryptCost}
}

// Register hashes the password and persists a new user. A duplicate
// email surfaces as model.ErrConflict.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	return s.store.Users().Create(ctx, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
}

// Authenticate verifies credentials and issues a bearer token.
// An unknown email is model.ErrNotFound; a wrong password is
// model.ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, "", model.ErrUnauthorized
	}
	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
