package store

import (
	"context"

	"github.com/focusflow/focusflow/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
//
// Every collection is scoped by the owning user: mutations resolve
// records by (owner, id) so a caller can never touch another user's
// data through a guessed identifier.
type Store interface {
	Users() Users
	Tasks() Tasks
	Journal() Journal
	FocusSessions() FocusSessions
	MeditationSessions() MeditationSessions
}

type Users interface {
	// Create persists a new user. A duplicate email yields model.ErrConflict.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, userID string) (*model.User, error)
}

type Tasks interface {
	Create(ctx context.Context, t *model.Task) (*model.Task, error)
	List(ctx context.Context, userID string) ([]*model.Task, error)
	// Update applies a partial change to the caller's own task.
	// Unknown or non-owned ids yield model.ErrNotFound.
	Update(ctx context.Context, userID, taskID string, upd model.TaskUpdate) (*model.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
	// Count returns the number of tasks for a user, optionally
	// restricted to one status (empty status counts all).
	Count(ctx context.Context, userID, status string) (int, error)
}

type Journal interface {
	Create(ctx context.Context, e *model.JournalEntry) (*model.JournalEntry, error)
	List(ctx context.Context, userID string) ([]*model.JournalEntry, error)
	Update(ctx context.Context, userID, entryID string, upd model.JournalUpdate) (*model.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID string) error
}

// FocusSessions is an append-only log of Pomodoro cycles.
type FocusSessions interface {
	Create(ctx context.Context, s *model.FocusSession) (*model.FocusSession, error)
	List(ctx context.Context, userID string) ([]*model.FocusSession, error)
}

// MeditationSessions is an append-only log of meditation sittings.
type MeditationSessions interface {
	Create(ctx context.Context, s *model.MeditationSession) (*model.MeditationSession, error)
	List(ctx context.Context, userID string) ([]*model.MeditationSession, error)
}
