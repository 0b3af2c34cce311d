package client

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokenStore is an in-memory TokenStore.
type fakeTokenStore struct {
	token string
}

func (f *fakeTokenStore) SaveToken(token string) error { f.token = token; return nil }
func (f *fakeTokenStore) LoadToken() (string, error)   { return f.token, nil }
func (f *fakeTokenStore) ClearToken() error            { f.token = ""; return nil }

func makeToken(t *testing.T, userID, email, name string, exp time.Time) string {
	t.Helper()
	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("whatever"))
	require.NoError(t, err)
	return signed
}

func TestSessionManager_StartsAnonymous(t *testing.T) {
	m := NewSessionManager(nil)
	assert.Equal(t, StateAnonymous, m.State())
	assert.Equal(t, "anonymous", m.State().String())

	_, ok := m.Identity()
	assert.False(t, ok)
	_, ok = m.Token()
	assert.False(t, ok)
}

func TestSessionManager_EstablishAndSignOut(t *testing.T) {
	store := &fakeTokenStore{}
	m := NewSessionManager(store)

	tok := makeToken(t, "u-1", "ada@example.com", "Ada", time.Now().Add(time.Hour))
	require.NoError(t, m.establish(tok))

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, tok, store.token, "token persisted")

	id, ok := m.Identity()
	require.True(t, ok)
	assert.Equal(t, "u-1", id.ID)
	assert.Equal(t, "Ada", id.Name)
	assert.Equal(t, "ada@example.com", id.Email)

	require.NoError(t, m.SignOut())
	assert.Equal(t, StateAnonymous, m.State())
	assert.Empty(t, store.token, "persisted token cleared")
}

func TestSessionManager_EstablishRejectsExpired(t *testing.T) {
	m := NewSessionManager(nil)
	tok := makeToken(t, "u-1", "ada@example.com", "Ada", time.Now().Add(-time.Hour))
	require.Error(t, m.establish(tok))
	assert.Equal(t, StateAnonymous, m.State())
}

func TestSessionManager_Restore(t *testing.T) {
	t.Run("live token restores the session", func(t *testing.T) {
		tok := makeToken(t, "u-1", "ada@example.com", "Ada", time.Now().Add(time.Hour))
		m := NewSessionManager(&fakeTokenStore{token: tok})
		require.NoError(t, m.Restore())

		assert.Equal(t, StateAuthenticated, m.State())
		id, ok := m.Identity()
		require.True(t, ok)
		assert.Equal(t, "u-1", id.ID)
	})

	t.Run("expired token collapses to anonymous", func(t *testing.T) {
		tok := makeToken(t, "u-1", "ada@example.com", "Ada", time.Now().Add(-time.Minute))
		store := &fakeTokenStore{token: tok}
		m := NewSessionManager(store)
		require.NoError(t, m.Restore())

		assert.Equal(t, StateAnonymous, m.State())
		assert.Empty(t, store.token, "stale token discarded")
	})

	t.Run("garbage token is discarded", func(t *testing.T) {
		store := &fakeTokenStore{token: "not-a-jwt"}
		m := NewSessionManager(store)
		require.NoError(t, m.Restore())

		assert.Equal(t, StateAnonymous, m.State())
		assert.Empty(t, store.token)
	})

	t.Run("empty store stays anonymous", func(t *testing.T) {
		m := NewSessionManager(&fakeTokenStore{})
		require.NoError(t, m.Restore())
		assert.Equal(t, StateAnonymous, m.State())
	})
}
