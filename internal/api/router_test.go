package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/focusflow/focusflow/internal/auth"
	"github.com/focusflow/focusflow/internal/config"
	"github.com/focusflow/focusflow/internal/store/sqlite"
)

// testServer wraps an httptest server over the full router backed by an
// in-memory sqlite store.
type testServer struct {
	t   *testing.T
	srv *httptest.Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := sqlite.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st, err := sqlite.New(db)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    bcrypt.MinCost,
	}
	authn, err := auth.New(cfg.JWTSecret, time.Hour)
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(st, authn, cfg))
	t.Cleanup(srv.Close)

	return &testServer{t: t, srv: srv}
}

// do issues a request and decodes the JSON response body into a map.
func (ts *testServer) do(method, path, token string, body interface{}) (int, map[string]interface{}) {
	ts.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.srv.URL+path, reader)
	require.NoError(ts.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.srv.Client().Do(req)
	require.NoError(ts.t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(ts.t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// signUpAndIn registers a user and returns their bearer token.
func (ts *testServer) signUpAndIn(email string) string {
	ts.t.Helper()

	code, _ := ts.do(http.MethodPost, "/signup", "", map[string]string{
		"name": "Test User", "email": email, "password": "hunter22",
	})
	require.Equal(ts.t, http.StatusOK, code)

	code, body := ts.do(http.MethodPost, "/signin", "", map[string]string{
		"email": email, "password": "hunter22",
	})
	require.Equal(ts.t, http.StatusOK, code)
	token, _ := body["token"].(string)
	require.NotEmpty(ts.t, token)
	return token
}

func TestSignUp(t *testing.T) {
	ts := newTestServer(t)

	code, body := ts.do(http.MethodPost, "/signup", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "longenough",
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "user registered successfully", body["message"])

	t.Run("duplicate email conflicts", func(t *testing.T) {
		code, body := ts.do(http.MethodPost, "/signup", "", map[string]string{
			"name": "Ada Again", "email": "ada@example.com", "password": "longenough",
		})
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "user with email already exists", body["message"])
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		code, _ := ts.do(http.MethodPost, "/signup", "", map[string]string{
			"email": "noname@example.com", "password": "longenough",
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("bad email rejected", func(t *testing.T) {
		code, _ := ts.do(http.MethodPost, "/signup", "", map[string]string{
			"name": "Bob", "email": "not-an-email", "password": "longenough",
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestSignIn(t *testing.T) {
	ts := newTestServer(t)
	code, _ := ts.do(http.MethodPost, "/signup", "", map[string]string{
		"name": "Ada", "email": "ada@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, code)

	t.Run("unknown email is 404", func(t *testing.T) {
		code, body := ts.do(http.MethodPost, "/signin", "", map[string]string{
			"email": "ghost@example.com", "password": "hunter22",
		})
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "user not found", body["message"])
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		code, body := ts.do(http.MethodPost, "/signin", "", map[string]string{
			"email": "ada@example.com", "password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "password did not match", body["message"])
	})

	t.Run("success returns token and identity", func(t *testing.T) {
		code, body := ts.do(http.MethodPost, "/signin", "", map[string]string{
			"email": "ada@example.com", "password": "hunter22",
		})
		require.Equal(t, http.StatusOK, code)
		assert.NotEmpty(t, body["token"])
		assert.Equal(t, "Ada", body["name"])
		assert.Equal(t, "ada@example.com", body["email"])
		assert.NotEmpty(t, body["id"])
	})
}

func TestAuthGate(t *testing.T) {
	ts := newTestServer(t)

	code, _ := ts.do(http.MethodGet, "/task", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code, "no token")

	code, _ = ts.do(http.MethodGet, "/task", "garbage-token", nil)
	assert.Equal(t, http.StatusForbidden, code, "bad token")
}

func TestTaskLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.signUpAndIn("tasks@example.com")

	due := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	code, body := ts.do(http.MethodPost, "/task", token, map[string]interface{}{
		"task": "write report", "priority": "high", "dueDate": due,
	})
	require.Equal(t, http.StatusCreated, code)
	task := body["task"].(map[string]interface{})
	taskID := task["id"].(string)
	assert.Equal(t, "pending", task["status"])
	assert.Equal(t, "high", task["priority"])

	t.Run("list returns the task", func(t *testing.T) {
		code, body := ts.do(http.MethodGet, "/task", token, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("invalid priority rejected", func(t *testing.T) {
		code, _ := ts.do(http.MethodPost, "/task", token, map[string]interface{}{
			"task": "bad", "priority": "urgent", "dueDate": due,
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("missing priority rejected", func(t *testing.T) {
		code, _ := ts.do(http.MethodPost, "/task", token, map[string]interface{}{
			"task": "no priority", "dueDate": due,
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("complete the task", func(t *testing.T) {
		code, body := ts.do(http.MethodPatch, "/task/"+taskID, token, map[string]string{
			"status": "completed",
		})
		require.Equal(t, http.StatusOK, code)
		updated := body["task"].(map[string]interface{})
		assert.Equal(t, "completed", updated["status"])
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		code, _ := ts.do(http.MethodPatch, "/task/"+taskID, token, map[string]string{
			"status": "done",
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("another user cannot touch it", func(t *testing.T) {
		other := ts.signUpAndIn("intruder@example.com")
		code, _ := ts.do(http.MethodPatch, "/task/"+taskID, other, map[string]string{
			"status": "completed",
		})
		assert.Equal(t, http.StatusNotFound, code)

		code, _ = ts.do(http.MethodDelete, "/task/"+taskID, other, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("delete", func(t *testing.T) {
		code, body := ts.do(http.MethodDelete, "/task/"+taskID, token, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "task deleted", body["message"])

		code, _ = ts.do(http.MethodDelete, "/task/"+taskID, token, nil)
		assert.Equal(t, http.StatusNotFound, code, "second delete finds nothing")
	})
}

func TestJournalLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := ts.signUpAndIn("journal@example.com")

	code, body := ts.do(http.MethodPost, "/journal", token, map[string]interface{}{
		"content": "productive morning",
	})
	require.Equal(t, http.StatusCreated, code)
	entry := body["entry"].(map[string]interface{})
	entryID := entry["id"].(string)
	assert.Equal(t, "neutral", entry["mood"], "mood defaults when omitted")

	t.Run("invalid mood rejected", func(t *testing.T) {
		code, _ := ts.do(http.MethodPost, "/journal", token, map[string]interface{}{
			"content": "x", "mood": "ecstatic",
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("patch mood", func(t *testing.T) {
		code, body := ts.do(http.MethodPatch, "/journal/"+entryID, token, map[string]string{
			"mood": "happy",
		})
		require.Equal(t, http.StatusOK, code)
		updated := body["entry"].(map[string]interface{})
		assert.Equal(t, "happy", updated["mood"])
		assert.Equal(t, "productive morning", updated["content"], "content untouched")
	})

	t.Run("list", func(t *testing.T) {
		code, body := ts.do(http.MethodGet, "/journal", token, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(1), body["count"])
	})

	t.Run("delete", func(t *testing.T) {
		code, body := ts.do(http.MethodDelete, "/journal/"+entryID, token, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "journal entry deleted", body["message"])
	})
}

func TestSessionLogs(t *testing.T) {
	ts := newTestServer(t)
	token := ts.signUpAndIn("sessions@example.com")

	end := time.Now().UTC()
	start := end.Add(-25 * time.Minute)

	code, body := ts.do(http.MethodPost, "/pomodoro", token, map[string]interface{}{
		"startTime": start.Format(time.RFC3339),
		"endTime":   end.Format(time.RFC3339),
		"duration":  25,
	})
	require.Equal(t, http.StatusCreated, code)
	session := body["session"].(map[string]interface{})
	assert.Equal(t, "completed", session["status"], "status defaults when omitted")

	code, _ = ts.do(http.MethodPost, "/meditation", token, map[string]interface{}{
		"startTime": start.Format(time.RFC3339),
		"endTime":   end.Format(time.RFC3339),
		"duration":  10,
	})
	require.Equal(t, http.StatusCreated, code)

	t.Run("zero duration rejected", func(t *testing.T) {
		code, _ := ts.do(http.MethodPost, "/pomodoro", token, map[string]interface{}{
			"startTime": start.Format(time.RFC3339),
			"endTime":   end.Format(time.RFC3339),
			"duration":  0,
		})
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("lists are per user", func(t *testing.T) {
		code, body := ts.do(http.MethodGet, "/pomodoro", token, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(1), body["count"])

		other := ts.signUpAndIn("other@example.com")
		code, body = ts.do(http.MethodGet, "/pomodoro", other, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, float64(0), body["count"])
	})
}

func TestAnalytics(t *testing.T) {
	ts := newTestServer(t)
	token := ts.signUpAndIn("analytics@example.com")

	end := time.Now().UTC()
	for i := 0; i < 3; i++ {
		start := end.Add(-25 * time.Minute)
		code, _ := ts.do(http.MethodPost, "/pomodoro", token, map[string]interface{}{
			"startTime": start.Format(time.RFC3339),
			"endTime":   end.Format(time.RFC3339),
			"duration":  25,
		})
		require.Equal(t, http.StatusCreated, code)
	}
	code, _ := ts.do(http.MethodPost, "/meditation", token, map[string]interface{}{
		"startTime": end.Add(-10 * time.Minute).Format(time.RFC3339),
		"endTime":   end.Format(time.RFC3339),
		"duration":  10,
	})
	require.Equal(t, http.StatusCreated, code)

	due := end.Add(24 * time.Hour).Format(time.RFC3339)
	code, body := ts.do(http.MethodPost, "/task", token, map[string]interface{}{
		"task": "review PR", "priority": "medium", "dueDate": due,
	})
	require.Equal(t, http.StatusCreated, code)
	taskID := body["task"].(map[string]interface{})["id"].(string)
	code, _ = ts.do(http.MethodPatch, "/task/"+taskID, token, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, code)

	t.Run("stats", func(t *testing.T) {
		code, body := ts.do(http.MethodGet, "/analytics/stats", token, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, fmt.Sprintf("%.1f", 75.0/60), body["totalFocusTime"])
		assert.Equal(t, float64(3), body["completedSessions"])
		assert.Equal(t, float64(10), body["meditationMinutes"])
		assert.Equal(t, float64(1), body["tasksCompleted"])
	})

	t.Run("weekly trends", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.srv.URL+"/analytics/weekly-trends", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := ts.srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var trends []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&trends))
		require.Len(t, trends, 2)
		assert.Equal(t, "Week 1", trends[0]["week"])
		assert.Equal(t, float64(3), trends[0]["focus"])
		assert.Equal(t, float64(1), trends[0]["meditation"])
	})

	t.Run("achievements empty below thresholds", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.srv.URL+"/analytics/achievements", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := ts.srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var achievements []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&achievements))
		for _, a := range achievements {
			assert.NotEqual(t, "Focus Master", a["title"], "3 sessions should not earn the 50-session badge")
		}
	})
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	code, body := ts.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["status"])
}
