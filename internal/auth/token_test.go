package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow/focusflow/internal/model"
)

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New("", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)

	a, err := New("s3cret", 0)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, a.TTL(), "non-positive ttl falls back to a day")
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	a, err := New("s3cret", time.Hour)
	require.NoError(t, err)

	u := &model.User{ID: "u-1", Name: "Ada", Email: "ada@example.com"}
	tok, err := a.Issue(u)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := a.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, err := New("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := New("secret-b", time.Hour)
	require.NoError(t, err)

	tok, err := issuer.Issue(&model.User{ID: "u-1"})
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	a, err := New("s3cret", time.Hour)
	require.NoError(t, err)
	a.ttl = -time.Minute

	tok, err := a.Issue(&model.User{ID: "u-1"})
	require.NoError(t, err)

	_, err = a.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_Garbage(t *testing.T) {
	a, err := New("s3cret", time.Hour)
	require.NoError(t, err)

	_, err = a.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
