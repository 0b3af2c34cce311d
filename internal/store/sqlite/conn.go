package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) a SQLite database at the given path and enables WAL journal mode.
// The URI parameters give better concurrency for read-heavy workloads.
func Open(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenMemory opens a private in-memory database, used by tests.
func OpenMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, err
	}
	// a single connection keeps the in-memory database alive
	db.SetMaxOpenConns(1)
	return db, nil
}

// EnsureSchema creates the application tables if they do not exist.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            user_id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            creation_time TIMESTAMP NOT NULL
        );`,
		`CREATE TABLE IF NOT EXISTS tasks (
            task_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(user_id),
            task TEXT NOT NULL,
            due_date TIMESTAMP NOT NULL,
            status TEXT NOT NULL,
            priority TEXT NOT NULL,
            creation_time TIMESTAMP NOT NULL,
            update_time TIMESTAMP
        );`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id);`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
            entry_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(user_id),
            title TEXT,
            content TEXT NOT NULL,
            mood TEXT NOT NULL,
            creation_time TIMESTAMP NOT NULL,
            update_time TIMESTAMP
        );`,
		`CREATE INDEX IF NOT EXISTS idx_journal_user ON journal_entries(user_id);`,
		`CREATE TABLE IF NOT EXISTS focus_sessions (
            session_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(user_id),
            start_time TIMESTAMP NOT NULL,
            end_time TIMESTAMP NOT NULL,
            duration_minutes INTEGER NOT NULL,
            status TEXT NOT NULL,
            creation_time TIMESTAMP NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_focus_user ON focus_sessions(user_id);`,
		`CREATE TABLE IF NOT EXISTS meditation_sessions (
            session_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(user_id),
            start_time TIMESTAMP NOT NULL,
            end_time TIMESTAMP NOT NULL,
            duration_minutes INTEGER NOT NULL,
            creation_time TIMESTAMP NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_meditation_user ON meditation_sessions(user_id);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
