// Package localstore keeps device-local state for the FocusFlow client:
// the persisted session token, and the guest-mode task and journal
// lists. Lists are stored wholesale as serialized values under fixed
// keys, the same shape a browser keeps them in local storage.
package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/focusflow/focusflow/client"
	"github.com/focusflow/focusflow/internal/localstate"
)

const (
	keyToken   = "token"
	keyTasks   = "focusflow-todos"
	keyJournal = "focusflow-journal"
)

// Store is a sqlite-backed client.GuestStore.
type Store struct {
	db *sql.DB
}

var _ client.GuestStore = (*Store)(nil)

// Open opens the default local store under the user data dir
// (~/.focusflow, overridable via FOCUSFLOW_HOME). The file is separate
// from the server's database so a locally run service and a client can
// share the directory.
func Open() (*Store, error) {
	dir, err := localstate.DataDir()
	if err != nil {
		return nil, err
	}
	return OpenPath(filepath.Join(dir, "client.db"))
}

// OpenPath opens (or creates) a local store at an explicit path.
func OpenPath(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL
    );`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key=?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (s *Store) put(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?,?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value)
	return err
}

func (s *Store) del(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key=?`, key)
	return err
}

// --- TokenStore ---

func (s *Store) SaveToken(token string) error { return s.put(keyToken, token) }

func (s *Store) LoadToken() (string, error) { return s.get(keyToken) }

func (s *Store) ClearToken() error { return s.del(keyToken) }

// --- guest lists ---

func (s *Store) ListTasks() ([]*client.Task, error) {
	raw, err := s.get(keyTasks)
	if err != nil || raw == "" {
		return nil, err
	}
	var tasks []*client.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) SaveTasks(tasks []*client.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return s.put(keyTasks, string(data))
}

func (s *Store) ListJournal() ([]*client.JournalEntry, error) {
	raw, err := s.get(keyJournal)
	if err != nil || raw == "" {
		return nil, err
	}
	var entries []*client.JournalEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) SaveJournal(entries []*client.JournalEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.put(keyJournal, string(data))
}
