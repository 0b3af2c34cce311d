package services

import (
	"context"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/store"
)

// JournalService handles journal entries.
type JournalService struct {
	store store.Store
}

func NewJournalService(s store.Store) *JournalService { return &JournalService{store: s} }

// CreateEntry persists a new entry. Title is optional; an absent mood
// defaults to neutral.
func (s *JournalService) CreateEntry(ctx context.Context, userID string, title *string, content string, mood *string) (*model.JournalEntry, error) {
	m := model.MoodNeutral
	if mood != nil && *mood != "" {
		m = *mood
	}
	return s.store.Journal().Create(ctx, &model.JournalEntry{
		UserID:  userID,
		Title:   title,
		Content: content,
		Mood:    m,
	})
}

func (s *JournalService) ListEntries(ctx context.Context, userID string) ([]*model.JournalEntry, error) {
	return s.store.Journal().List(ctx, userID)
}

func (s *JournalService) UpdateEntry(ctx context.Context, userID, entryID string, upd model.JournalUpdate) (*model.JournalEntry, error) {
	return s.store.Journal().Update(ctx, userID, entryID, upd)
}

func (s *JournalService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	return s.store.Journal().Delete(ctx, userID, entryID)
}
