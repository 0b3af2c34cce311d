package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow/focusflow/client"
)

func TestLocalStore_TokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guest.db")
	st, err := OpenPath(path)
	require.NoError(t, err)
	defer st.Close()

	tok, err := st.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, tok, "fresh store holds no token")

	require.NoError(t, st.SaveToken("abc.def.ghi"))
	tok, err = st.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	require.NoError(t, st.ClearToken())
	tok, err = st.LoadToken()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestLocalStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guest.db")

	st, err := OpenPath(path)
	require.NoError(t, err)
	require.NoError(t, st.SaveToken("persisted-token"))
	require.NoError(t, st.SaveTasks([]*client.Task{
		{ID: "t1", Task: "water plants", Priority: "low", Status: "pending"},
		{ID: "t2", Task: "file taxes", Priority: "high", Status: "pending"},
	}))
	require.NoError(t, st.Close())

	st, err = OpenPath(path)
	require.NoError(t, err)
	defer st.Close()

	tok, err := st.LoadToken()
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", tok)

	tasks, err := st.ListTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "water plants", tasks[0].Task)
	assert.Equal(t, "high", tasks[1].Priority)
}

func TestLocalStore_JournalWholesale(t *testing.T) {
	st, err := OpenPath(filepath.Join(t.TempDir(), "guest.db"))
	require.NoError(t, err)
	defer st.Close()

	entries, err := st.ListJournal()
	require.NoError(t, err)
	assert.Empty(t, entries)

	title := "morning pages"
	require.NoError(t, st.SaveJournal([]*client.JournalEntry{
		{ID: "j1", Title: &title, Content: "slept well", Mood: "happy"},
	}))

	entries, err = st.ListJournal()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Title)
	assert.Equal(t, "morning pages", *entries[0].Title)
	assert.Equal(t, "happy", entries[0].Mood)
}
