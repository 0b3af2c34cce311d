package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/focusflow/focusflow/client"
	"github.com/focusflow/focusflow/client/localstore"
	"github.com/focusflow/focusflow/internal/api"
	"github.com/focusflow/focusflow/internal/auth"
	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/store/sqlite"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := sqlite.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st, err := sqlite.New(db)
	require.NoError(t, err)

	cfg := &config.Config{JWTSecret: "test-secret", TokenTTLHours: 1, BcryptCost: bcrypt.MinCost}
	authn, err := auth.New(cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	srv := httptest.NewServer(api.NewRouter(st, authn, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_EndToEnd(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()

	local, err := localstore.OpenPath(filepath.Join(t.TempDir(), "guest.db"))
	require.NoError(t, err)
	defer local.Close()

	c, err := client.New(srv.URL, client.WithLocalStore(local))
	require.NoError(t, err)

	require.NoError(t, c.SignUp(ctx, "Ada", "ada@example.com", "hunter22"))
	assert.Equal(t, client.StateAnonymous, c.Session().State(), "signup does not sign in")

	id, err := c.SignIn(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "Ada", id.Name)
	assert.Equal(t, client.StateAuthenticated, c.Session().State())

	task, err := c.CreateTask(ctx, "review the roadmap", "high", time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "pending", task.Status)

	tasks, err := c.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	done, err := c.UpdateTaskStatus(ctx, task.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)

	entry, err := c.CreateJournalEntry(ctx, nil, "shipped the report", "happy")
	require.NoError(t, err)
	sad := "sad"
	patched, err := c.UpdateJournalEntry(ctx, entry.ID, client.JournalEntryUpdate{Mood: &sad})
	require.NoError(t, err)
	assert.Equal(t, "sad", patched.Mood)
	assert.Equal(t, "shipped the report", patched.Content, "content untouched by mood patch")

	end := time.Now().UTC()
	_, err = c.RecordFocusSession(ctx, end.Add(-25*time.Minute), end, 25, "")
	require.NoError(t, err)

	stats, err := c.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CompletedSessions)
	assert.Equal(t, 1, stats.TasksCompleted)

	trends, err := c.GetWeeklyTrends(ctx)
	require.NoError(t, err)
	require.Len(t, trends, 2)
	assert.Equal(t, 1, trends[0].Focus)

	dist, err := c.GetProductivityDistribution(ctx)
	require.NoError(t, err)
	require.Len(t, dist, 3)
	assert.Equal(t, "Focus", dist[0].Name)

	moods, err := c.GetDailyMood(ctx)
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, 1, moods[0].Mood, "sad maps to the bottom of the scale")

	require.NoError(t, c.DeleteTask(ctx, task.ID))
	err = c.DeleteTask(ctx, task.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	t.Run("session survives a new client over the same store", func(t *testing.T) {
		c2, err := client.New(srv.URL, client.WithLocalStore(local))
		require.NoError(t, err)
		require.NoError(t, c2.Session().Restore())
		assert.Equal(t, client.StateAuthenticated, c2.Session().State())

		id, ok := c2.Session().Identity()
		require.True(t, ok)
		assert.Equal(t, "ada@example.com", id.Email)
	})

	require.NoError(t, c.SignOut())
	assert.Equal(t, client.StateAnonymous, c.Session().State())
}

func TestClient_SignInFailures(t *testing.T) {
	srv := startServer(t)
	ctx := context.Background()

	c, err := client.New(srv.URL)
	require.NoError(t, err)

	_, err = c.SignIn(ctx, "ghost@example.com", "whatever")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	require.NoError(t, c.SignUp(ctx, "Ada", "ada@example.com", "hunter22"))
	_, err = c.SignIn(ctx, "ada@example.com", "wrong")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, client.StateAnonymous, c.Session().State())
}

func TestClient_GuestMode(t *testing.T) {
	// Any request reaching the server fails the test: guest mode must
	// stay entirely local.
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx := context.Background()
	local, err := localstore.OpenPath(filepath.Join(t.TempDir(), "guest.db"))
	require.NoError(t, err)
	defer local.Close()

	c, err := client.New(srv.URL, client.WithLocalStore(local))
	require.NoError(t, err)

	task, err := c.CreateTask(ctx, "water plants", "", time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "medium", task.Priority, "priority defaults locally too")
	assert.Equal(t, "pending", task.Status)

	tasks, err := c.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	done, err := c.UpdateTaskStatus(ctx, task.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", done.Status)
	require.NotNil(t, done.UpdateTime)

	require.NoError(t, c.DeleteTask(ctx, task.ID))
	err = c.DeleteTask(ctx, task.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	entry, err := c.CreateJournalEntry(ctx, nil, "grateful for rain", "")
	require.NoError(t, err)
	assert.Equal(t, "neutral", entry.Mood)

	stressed := "stressed"
	patched, err := c.UpdateJournalEntry(ctx, entry.ID, client.JournalEntryUpdate{Mood: &stressed})
	require.NoError(t, err)
	assert.Equal(t, "stressed", patched.Mood)
	require.NotNil(t, patched.UpdateTime)

	entries, err := c.ListJournal(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "stressed", entries[0].Mood, "patch persisted to the local store")
	require.NoError(t, c.DeleteJournalEntry(ctx, entry.ID))

	t.Run("session logs require authentication", func(t *testing.T) {
		_, err := c.RecordFocusSession(ctx, time.Now().Add(-25*time.Minute), time.Now(), 25, "")
		assert.ErrorIs(t, err, client.ErrNotAuthenticated)
		_, err = c.GetStats(ctx)
		assert.ErrorIs(t, err, client.ErrNotAuthenticated)
	})

	assert.Zero(t, hits.Load(), "guest operations must not touch the network")
}

func TestClient_NoLocalStore(t *testing.T) {
	c, err := client.New("http://127.0.0.1:0")
	require.NoError(t, err)

	_, err = c.ListTasks(context.Background())
	assert.True(t, errors.Is(err, client.ErrNoLocalStore))
	_, err = c.CreateJournalEntry(context.Background(), nil, "x", "")
	assert.True(t, errors.Is(err, client.ErrNoLocalStore))
}
