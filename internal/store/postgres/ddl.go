package postgres

import "database/sql"

// EnsureSchema creates the application tables if they do not exist.
// Deployments normally apply these through migrations; tests and local
// runs call it directly.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            user_id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password_hash TEXT NOT NULL,
            creation_time TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
		`CREATE TABLE IF NOT EXISTS tasks (
            task_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(user_id),
            task TEXT NOT NULL,
            due_date TIMESTAMPTZ NOT NULL,
            status TEXT NOT NULL,
            priority TEXT NOT NULL,
            creation_time TIMESTAMPTZ NOT NULL DEFAULT now(),
            update_time TIMESTAMPTZ
        );`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id);`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
            entry_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(user_id),
            title TEXT,
            content TEXT NOT NULL,
            mood TEXT NOT NULL,
            creation_time TIMESTAMPTZ NOT NULL DEFAULT now(),
            update_time TIMESTAMPTZ
        );`,
		`CREATE INDEX IF NOT EXISTS idx_journal_user ON journal_entries(user_id);`,
		`CREATE TABLE IF NOT EXISTS focus_sessions (
            session_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(user_id),
            start_time TIMESTAMPTZ NOT NULL,
            end_time TIMESTAMPTZ NOT NULL,
            duration_minutes INTEGER NOT NULL,
            status TEXT NOT NULL,
            creation_time TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
		`CREATE INDEX IF NOT EXISTS idx_focus_user ON focus_sessions(user_id);`,
		`CREATE TABLE IF NOT EXISTS meditation_sessions (
            session_id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL REFERENCES users(user_id),
            start_time TIMESTAMPTZ NOT NULL,
            end_time TIMESTAMPTZ NOT NULL,
            duration_minutes INTEGER NOT NULL,
            creation_time TIMESTAMPTZ NOT NULL DEFAULT now()
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
