package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/store"
)

// New constructs a SQLite-backed store with schema applied.
func New(db *sql.DB) (store.Store, error) {
	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Users() store.Users                           { return &users{db: s.db} }
func (s *sqliteStore) Tasks() store.Tasks                           { return &tasks{db: s.db} }
func (s *sqliteStore) Journal() store.Journal                       { return &journal{db: s.db} }
func (s *sqliteStore) FocusSessions() store.FocusSessions           { return &focusSessions{db: s.db} }
func (s *sqliteStore) MeditationSessions() store.MeditationSessions { return &meditationSessions{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	out := *m
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()
	_, err := u.db.ExecContext(ctx, `
        INSERT INTO users (user_id, name, email, password_hash, creation_time)
        VALUES (?,?,?,?,?)
    `, out.ID, out.Name, out.Email, out.PasswordHash, out.CreationTime)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrConflict
		}
		return nil, err
	}
	return &out, nil
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.get(ctx, `SELECT user_id, name, email, password_hash, creation_time FROM users WHERE email=?`, email)
}

func (u *users) GetByID(ctx context.Context, userID string) (*model.User, error) {
	return u.get(ctx, `SELECT user_id, name, email, password_hash, creation_time FROM users WHERE user_id=?`, userID)
}

func (u *users) get(ctx context.Context, query, arg string) (*model.User, error) {
	var out model.User
	row := u.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.CreationTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// --- Tasks ---

type tasks struct{ db *sql.DB }

func (t *tasks) Create(ctx context.Context, m *model.Task) (*model.Task, error) {
	out := *m
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()
	_, err := t.db.ExecContext(ctx, `
        INSERT INTO tasks (task_id, user_id, task, due_date, status, priority, creation_time)
        VALUES (?,?,?,?,?,?,?)
    `, out.ID, out.UserID, out.Task, out.DueDate, out.Status, out.Priority, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *tasks) List(ctx context.Context, userID string) ([]*model.Task, error) {
	rows, err := t.db.QueryContext(ctx, `
        SELECT task_id, user_id, task, due_date, status, priority, creation_time, update_time
        FROM tasks WHERE user_id=? ORDER BY creation_time DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.Task
	for rows.Next() {
		var m model.Task
		if err := rows.Scan(&m.ID, &m.UserID, &m.Task, &m.DueDate, &m.Status, &m.Priority, &m.CreationTime, &m.UpdateTime); err != nil {
			return nil, err
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}

func (t *tasks) Update(ctx context.Context, userID, taskID string, upd model.TaskUpdate) (*model.Task, error) {
	if upd.Status != nil {
		now := time.Now().UTC()
		res, err := t.db.ExecContext(ctx, `
            UPDATE tasks SET status=?, update_time=? WHERE user_id=? AND task_id=?
        `, *upd.Status, now, userID, taskID)
		if err != nil {
			return nil, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, model.ErrNotFound
		}
	}
	return t.get(ctx, userID, taskID)
}

func (t *tasks) get(ctx context.Context, userID, taskID string) (*model.Task, error) {
	var m model.Task
	row := t.db.QueryRowContext(ctx, `
        SELECT task_id, user_id, task, due_date, status, priority, creation_time, update_time
        FROM tasks WHERE user_id=? AND task_id=?
    `, userID, taskID)
	if err := row.Scan(&m.ID, &m.UserID, &m.Task, &m.DueDate, &m.Status, &m.Priority, &m.CreationTime, &m.UpdateTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (t *tasks) Delete(ctx context.Context, userID, taskID string) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id=? AND task_id=?`, userID, taskID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (t *tasks) Count(ctx context.Context, userID, status string) (int, error) {
	var n int
	var err error
	if status == "" {
		err = t.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id=?`, userID).Scan(&n)
	} else {
		err = t.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id=? AND status=?`, userID, status).Scan(&n)
	}
	return n, err
}

// --- Journal ---

type journal struct{ db *sql.DB }

func (j *journal) Create(ctx context.Context, m *model.JournalEntry) (*model.JournalEntry, error) {
	out := *m
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()
	_, err := j.db.ExecContext(ctx, `
        INSERT INTO journal_entries (entry_id, user_id, title, content, mood, creation_time)
        VALUES (?,?,?,?,?,?)
    `, out.ID, out.UserID, out.Title, out.Content, out.Mood, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (j *journal) List(ctx context.Context, userID string) ([]*model.JournalEntry, error) {
	rows, err := j.db.QueryContext(ctx, `
        SELECT entry_id, user_id, title, content, mood, creation_time, update_time
        FROM journal_entries WHERE user_id=? ORDER BY creation_time DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.JournalEntry
	for rows.Next() {
		var m model.JournalEntry
		if err := rows.Scan(&m.ID, &m.UserID, &m.Title, &m.Content, &m.Mood, &m.CreationTime, &m.UpdateTime); err != nil {
			return nil, err
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}

func (j *journal) Update(ctx context.Context, userID, entryID string, upd model.JournalUpdate) (*model.JournalEntry, error) {
	cur, err := j.get(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		cur.Title = upd.Title
	}
	if upd.Content != nil {
		cur.Content = *upd.Content
	}
	if upd.Mood != nil {
		cur.Mood = *upd.Mood
	}
	now := time.Now().UTC()
	cur.UpdateTime = &now
	_, err = j.db.ExecContext(ctx, `
        UPDATE journal_entries SET title=?, content=?, mood=?, update_time=?
        WHERE user_id=? AND entry_id=?
    `, cur.Title, cur.Content, cur.Mood, cur.UpdateTime, userID, entryID)
	if err != nil {
		return nil, err
	}
	return cur, nil
}

func (j *journal) get(ctx context.Context, userID, entryID string) (*model.JournalEntry, error) {
	var m model.JournalEntry
	row := j.db.QueryRowContext(ctx, `
        SELECT entry_id, user_id, title, content, mood, creation_time, update_time
        FROM journal_entries WHERE user_id=? AND entry_id=?
    `, userID, entryID)
	if err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Content, &m.Mood, &m.CreationTime, &m.UpdateTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (j *journal) Delete(ctx context.Context, userID, entryID string) error {
	res, err := j.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE user_id=? AND entry_id=?`, userID, entryID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Focus sessions ---

type focusSessions struct{ db *sql.DB }

func (f *focusSessions) Create(ctx context.Context, m *model.FocusSession) (*model.FocusSession, error) {
	out := *m
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()
	_, err := f.db.ExecContext(ctx, `
        INSERT INTO focus_sessions (session_id, user_id, start_time, end_time, duration_minutes, status, creation_time)
        VALUES (?,?,?,?,?,?,?)
    `, out.ID, out.UserID, out.StartTime, out.EndTime, out.Duration, out.Status, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *focusSessions) List(ctx context.Context, userID string) ([]*model.FocusSession, error) {
	rows, err := f.db.QueryContext(ctx, `
        SELECT session_id, user_id, start_time, end_time, duration_minutes, status, creation_time
        FROM focus_sessions WHERE user_id=? ORDER BY start_time DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.FocusSession
	for rows.Next() {
		var m model.FocusSession
		if err := rows.Scan(&m.ID, &m.UserID, &m.StartTime, &m.EndTime, &m.Duration, &m.Status, &m.CreationTime); err != nil {
			return nil, err
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}

// --- Meditation sessions ---

type meditationSessions struct{ db *sql.DB }

func (ms *meditationSessions) Create(ctx context.Context, m *model.MeditationSession) (*model.MeditationSession, error) {
	out := *m
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()
	_, err := ms.db.ExecContext(ctx, `
        INSERT INTO meditation_sessions (session_id, user_id, start_time, end_time, duration_minutes, creation_time)
        VALUES (?,?,?,?,?,?)
    `, out.ID, out.UserID, out.StartTime, out.EndTime, out.Duration, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (ms *meditationSessions) List(ctx context.Context, userID string) ([]*model.MeditationSession, error) {
	rows, err := ms.db.QueryContext(ctx, `
        SELECT session_id, user_id, start_time, end_time, duration_minutes, creation_time
        FROM meditation_sessions WHERE user_id=? ORDER BY start_time DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.MeditationSession
	for rows.Next() {
		var m model.MeditationSession
		if err := rows.Scan(&m.ID, &m.UserID, &m.StartTime, &m.EndTime, &m.Duration, &m.CreationTime); err != nil {
			return nil, err
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}
