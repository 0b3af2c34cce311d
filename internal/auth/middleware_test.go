package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow/focusflow/internal/model"
)

func TestExtractBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/task", nil)
	_, err := ExtractBearerToken(r)
	assert.ErrorIs(t, err, ErrMissingToken)

	r.Header.Set("Authorization", "Basic abc")
	_, err = ExtractBearerToken(r)
	assert.ErrorIs(t, err, ErrMissingToken)

	r.Header.Set("Authorization", "Bearer tok123")
	tok, err := ExtractBearerToken(r)
	require.NoError(t, err)
	assert.Equal(t, "tok123", tok)
}

func TestRequireAuth(t *testing.T) {
	a, err := New("s3cret", time.Hour)
	require.NoError(t, err)

	var seen *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := a.RequireAuth(next)

	t.Run("missing header is 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/task", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token is 403", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/task", nil)
		r.Header.Set("Authorization", "Bearer bogus")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("expired token is 403", func(t *testing.T) {
		expired, err := New("s3cret", time.Hour)
		require.NoError(t, err)
		expired.ttl = -time.Minute
		tok, err := expired.Issue(&model.User{ID: "u-1"})
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/task", nil)
		r.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "token expired")
	})

	t.Run("valid token reaches handler with claims", func(t *testing.T) {
		tok, err := a.Issue(&model.User{ID: "u-1", Email: "ada@example.com", Name: "Ada"})
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/task", nil)
		r.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "u-1", seen.UserID)
	})
}
