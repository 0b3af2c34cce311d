package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	newUser := func(name string) *model.User {
		u, err := s.Users().Create(ctx, &model.User{
			Name:         name,
			Email:        name + "-" + uuid.New().String() + "@example.test",
			PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		})
		if err != nil {
			t.Fatalf("CreateUser %s: %v", name, err)
		}
		return u
	}

	owner := newUser("owner")
	other := newUser("other")

	// Users
	if got, err := s.Users().GetByEmail(ctx, owner.Email); err != nil || got.ID != owner.ID {
		t.Fatalf("GetByEmail: got=%v err=%v", got, err)
	}
	if got, err := s.Users().GetByID(ctx, owner.ID); err != nil || got.Email != owner.Email {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if _, err := s.Users().GetByEmail(ctx, "nobody@example.test"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetByEmail miss: want ErrNotFound, got %v", err)
	}
	if _, err := s.Users().Create(ctx, &model.User{Name: "dup", Email: owner.Email, PasswordHash: "x"}); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("duplicate email: want ErrConflict, got %v", err)
	}

	// Tasks
	due := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	task, err := s.Tasks().Create(ctx, &model.Task{
		UserID:   owner.ID,
		Task:     "Write report",
		DueDate:  due,
		Status:   model.TaskStatusPending,
		Priority: model.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID == "" || task.CreationTime.IsZero() {
		t.Fatalf("CreateTask: incomplete record %+v", task)
	}

	lst, err := s.Tasks().List(ctx, owner.ID)
	if err != nil || len(lst) != 1 || lst[0].ID != task.ID {
		t.Fatalf("ListTasks: n=%d err=%v", len(lst), err)
	}
	// ownership isolation
	if lst, err := s.Tasks().List(ctx, other.ID); err != nil || len(lst) != 0 {
		t.Fatalf("ListTasks other user: n=%d err=%v", len(lst), err)
	}

	done := model.TaskStatusCompleted
	upd, err := s.Tasks().Update(ctx, owner.ID, task.ID, model.TaskUpdate{Status: &done})
	if err != nil || upd.Status != model.TaskStatusCompleted {
		t.Fatalf("UpdateTask: got=%+v err=%v", upd, err)
	}
	// non-owner update must not resolve the record
	if _, err := s.Tasks().Update(ctx, other.ID, task.ID, model.TaskUpdate{Status: &done}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("cross-user UpdateTask: want ErrNotFound, got %v", err)
	}
	if err := s.Tasks().Delete(ctx, other.ID, task.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("cross-user DeleteTask: want ErrNotFound, got %v", err)
	}

	if n, err := s.Tasks().Count(ctx, owner.ID, model.TaskStatusCompleted); err != nil || n != 1 {
		t.Fatalf("CountTasks completed: n=%d err=%v", n, err)
	}
	if err := s.Tasks().Delete(ctx, owner.ID, task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if lst, err := s.Tasks().List(ctx, owner.ID); err != nil || len(lst) != 0 {
		t.Fatalf("ListTasks after delete: n=%d err=%v", len(lst), err)
	}

	// Journal
	title := "First entry"
	entry, err := s.Journal().Create(ctx, &model.JournalEntry{
		UserID:  owner.ID,
		Title:   &title,
		Content: "Felt productive today",
		Mood:    model.MoodHappy,
	})
	if err != nil {
		t.Fatalf("CreateJournal: %v", err)
	}
	if lst, err := s.Journal().List(ctx, other.ID); err != nil || len(lst) != 0 {
		t.Fatalf("ListJournal other user: n=%d err=%v", len(lst), err)
	}

	mood := model.MoodStressed
	updEntry, err := s.Journal().Update(ctx, owner.ID, entry.ID, model.JournalUpdate{Mood: &mood})
	if err != nil || updEntry.Mood != model.MoodStressed || updEntry.Content != entry.Content {
		t.Fatalf("UpdateJournal: got=%+v err=%v", updEntry, err)
	}
	if _, err := s.Journal().Update(ctx, other.ID, entry.ID, model.JournalUpdate{Mood: &mood}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("cross-user UpdateJournal: want ErrNotFound, got %v", err)
	}
	if err := s.Journal().Delete(ctx, owner.ID, entry.ID); err != nil {
		t.Fatalf("DeleteJournal: %v", err)
	}

	// Focus sessions (append-only)
	start := time.Now().Add(-25 * time.Minute).UTC().Truncate(time.Second)
	fs, err := s.FocusSessions().Create(ctx, &model.FocusSession{
		UserID:    owner.ID,
		StartTime: start,
		EndTime:   start.Add(25 * time.Minute),
		Duration:  25,
		Status:    model.SessionCompleted,
	})
	if err != nil || fs.ID == "" {
		t.Fatalf("CreateFocusSession: got=%+v err=%v", fs, err)
	}
	if lst, err := s.FocusSessions().List(ctx, owner.ID); err != nil || len(lst) != 1 {
		t.Fatalf("ListFocusSessions: n=%d err=%v", len(lst), err)
	}
	if lst, err := s.FocusSessions().List(ctx, other.ID); err != nil || len(lst) != 0 {
		t.Fatalf("ListFocusSessions other user: n=%d err=%v", len(lst), err)
	}

	// Meditation sessions (append-only)
	md, err := s.MeditationSessions().Create(ctx, &model.MeditationSession{
		UserID:    owner.ID,
		StartTime: start,
		EndTime:   start.Add(10 * time.Minute),
		Duration:  10,
	})
	if err != nil || md.ID == "" {
		t.Fatalf("CreateMeditationSession: got=%+v err=%v", md, err)
	}
	if lst, err := s.MeditationSessions().List(ctx, owner.ID); err != nil || len(lst) != 1 {
		t.Fatalf("ListMeditationSessions: n=%d err=%v", len(lst), err)
	}
}
