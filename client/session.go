package client

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// State is the session manager's authentication state. A stored token
// found expired (the transient Expired condition) collapses straight
// back to Anonymous, so only two states are observable.
type State int

const (
	StateAnonymous State = iota
	StateAuthenticated
)

func (s State) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// TokenStore persists the bearer token across process restarts.
type TokenStore interface {
	SaveToken(token string) error
	// LoadToken returns the stored token, or "" when none is held.
	LoadToken() (string, error)
	ClearToken() error
}

// GuestStore is the device-local storage used when no session is held:
// token persistence plus wholesale task and journal lists, mirroring
// how a browser keeps serialized lists in local storage.
type GuestStore interface {
	TokenStore
	ListTasks() ([]*Task, error)
	SaveTasks(tasks []*Task) error
	ListJournal() ([]*JournalEntry, error)
	SaveJournal(entries []*JournalEntry) error
}

// tokenClaims is the client-side view of the server's token payload.
type tokenClaims struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// SessionManager holds the bearer token and the identity decoded from
// it. It never verifies signatures; the server remains the authority
// and will reject a forged token on first use.
type SessionManager struct {
	mu       sync.RWMutex
	tokens   TokenStore // may be nil
	token    string
	identity *Identity
}

// NewSessionManager constructs a session manager. A nil TokenStore
// disables persistence; the session then lives only in memory.
func NewSessionManager(tokens TokenStore) *SessionManager {
	return &SessionManager{tokens: tokens}
}

// State reports the current authentication state.
func (m *SessionManager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token != "" {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Identity returns the cached identity claims when authenticated.
func (m *SessionManager) Identity() (*Identity, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.identity == nil {
		return nil, false
	}
	id := *m.identity
	return &id, true
}

// Token returns the held bearer token.
func (m *SessionManager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

// Restore checks the persisted token at startup. An unparseable or
// expired token is discarded and the session stays anonymous; a live
// one is trusted until the server says otherwise.
func (m *SessionManager) Restore() error {
	if m.tokens == nil {
		return nil
	}
	stored, err := m.tokens.LoadToken()
	if err != nil {
		return err
	}
	if stored == "" {
		return nil
	}

	claims, err := decodeClaims(stored)
	if err != nil || expired(claims) {
		// invalid or expired: drop it and remain anonymous
		return m.tokens.ClearToken()
	}

	m.mu.Lock()
	m.token = stored
	m.identity = &Identity{ID: claims.UserID, Name: claims.Name, Email: claims.Email}
	m.mu.Unlock()
	return nil
}

// establish installs a freshly issued token and persists it.
func (m *SessionManager) establish(token string) error {
	claims, err := decodeClaims(token)
	if err != nil {
		return err
	}
	if expired(claims) {
		return errors.New("received an already expired token")
	}

	m.mu.Lock()
	m.token = token
	m.identity = &Identity{ID: claims.UserID, Name: claims.Name, Email: claims.Email}
	m.mu.Unlock()

	if m.tokens != nil {
		return m.tokens.SaveToken(token)
	}
	return nil
}

// SignOut drops the session and clears the persisted token.
func (m *SessionManager) SignOut() error {
	m.mu.Lock()
	m.token = ""
	m.identity = nil
	m.mu.Unlock()

	if m.tokens != nil {
		return m.tokens.ClearToken()
	}
	return nil
}

func decodeClaims(token string) (*tokenClaims, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

func expired(c *tokenClaims) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(time.Now())
}
