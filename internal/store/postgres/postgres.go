package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
// Schema setup is handled by migrations, not here.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users                           { return &users{db: s.db} }
func (s *pgStore) Tasks() store.Tasks                           { return &tasks{db: s.db} }
func (s *pgStore) Journal() store.Journal                       { return &journal{db: s.db} }
func (s *pgStore) FocusSessions() store.FocusSessions           { return &focusSessions{db: s.db} }
func (s *pgStore) MeditationSessions() store.MeditationSessions { return &meditationSessions{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// 23505 is unique_violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapNoRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	out := *m
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	var created time.Time
	row := u.db.QueryRowContext(ctx, `
        INSERT INTO users (user_id, name, email, password_hash)
        VALUES ($1,$2,$3,$4)
        RETURNING creation_time
    `, out.ID, out.Name, out.Email, out.PasswordHash)
	if err := row.Scan(&created); err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrConflict
		}
		return nil, err
	}
	out.CreationTime = created
	return &out, nil
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.get(ctx, `SELECT user_id, name, email, password_hash, creation_time FROM users WHERE email=$1`, email)
}

func (u *users) GetByID(ctx context.Context, userID string) (*model.User, error) {
	return u.get(ctx, `SELECT user_id, name, email, password_hash, creation_time FROM users WHERE user_id=$1`, userID)
}

func (u *users) get(ctx context.Context, query, arg string) (*model.User, error) {
	var out model.User
	row := u.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.PasswordHash, &out.CreationTime); err != nil {
		return nil, mapNoRows(err)
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
	var created time.Time
	row := t.db.QueryRowContext(ctx, `
        INSERT INTO tasks (task_id, user_id, task, due_date, status, priority)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING creation_time
    `, out.ID, out.UserID, out.Task, out.DueDate, out.Status, out.Priority)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreationTime = created
	return &out, nil
}

func (t *tasks) List(ctx context.Context, userID string) ([]*model.Task, error) {
	rows, err := t.db.QueryContext(ctx, `
        SELECT task_id, user_id, task, due_date, status, priority, creation_time, update_time
        FROM tasks WHERE user_id=$1 ORDER BY creation_time DESC
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
	var m model.Task
	row := t.db.QueryRowContext(ctx, `
        UPDATE tasks SET status=COALESCE($1, status), update_time=now()
        WHERE user_id=$2 AND task_id=$3
        RETURNING task_id, user_id, task, due_date, status, priority, creation_time, update_time
    `, upd.Status, userID, taskID)
	if err := row.Scan(&m.ID, &m.UserID, &m.Task, &m.DueDate, &m.Status, &m.Priority, &m.CreationTime, &m.UpdateTime); err != nil {
		return nil, mapNoRows(err)
	}
	return &m, nil
}

func (t *tasks) Delete(ctx context.Context, userID, taskID string) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM tasks WHERE user_id=$1 AND task_id=$2`, userID, taskID)
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
		err = t.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id=$1`, userID).Scan(&n)
	} else {
		err = t.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id=$1 AND status=$2`, userID, status).Scan(&n)
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
	var created time.Time
	row := j.db.QueryRowContext(ctx, `
        INSERT INTO journal_entries (entry_id, user_id, title, content, mood)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING creation_time
    `, out.ID, out.UserID, out.Title, out.Content, out.Mood)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreationTime = created
	return &out, nil
}

func (j *journal) List(ctx context.Context, userID string) ([]*model.JournalEntry, error) {
	rows, err := j.db.QueryContext(ctx, `
        SELECT entry_id, user_id, title, content, mood, creation_time, update_time
        FROM journal_entries WHERE user_id=$1 ORDER BY creation_time DESC
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
	var m model.JournalEntry
	row := j.db.QueryRowContext(ctx, `
        UPDATE journal_entries SET
            title=COALESCE($1, title),
            content=COALESCE($2, content),
            mood=COALESCE($3, mood),
            update_time=now()
        WHERE user_id=$4 AND entry_id=$5
        RETURNING entry_id, user_id, title, content, mood, creation_time, update_time
    `, upd.Title, upd.Content, upd.Mood, userID, entryID)
	if err := row.Scan(&m.ID, &m.UserID, &m.Title, &m.Content, &m.Mood, &m.CreationTime, &m.UpdateTime); err != nil {
		return nil, mapNoRows(err)
	}
	return &m, nil
}

func (j *journal) Delete(ctx context.Context, userID, entryID string) error {
	res, err := j.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE user_id=$1 AND entry_id=$2`, userID, entryID)
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
	var created time.Time
	row := f.db.QueryRowContext(ctx, `
        INSERT INTO focus_sessions (session_id, user_id, start_time, end_time, duration_minutes, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING creation_time
    `, out.ID, out.UserID, out.StartTime, out.EndTime, out.Duration, out.Status)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreationTime = created
	return &out, nil
}

func (f *focusSessions) List(ctx context.Context, userID string) ([]*model.FocusSession, error) {
	rows, err := f.db.QueryContext(ctx, `
        SELECT session_id, user_id, start_time, end_time, duration_minutes, status, creation_time
        FROM focus_sessions WHERE user_id=$1 ORDER BY start_time DESC
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
	var created time.Time
	row := ms.db.QueryRowContext(ctx, `
        INSERT INTO meditation_sessions (session_id, user_id, start_time, end_time, duration_minutes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING creation_time
    `, out.ID, out.UserID, out.StartTime, out.EndTime, out.Duration)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreationTime = created
	return &out, nil
}

func (ms *meditationSessions) List(ctx context.Context, userID string) ([]*model.MeditationSession, error) {
	rows, err := ms.db.QueryContext(ctx, `
        SELECT session_id, user_id, start_time, end_time, duration_minutes, creation_time
        FROM meditation_sessions WHERE user_id=$1 ORDER BY start_time DESC
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
