package services

import (
	"context"
	"time"

	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/store"
)

// SessionService records focus and meditation sessions. Both logs are
// append-only; edits would falsify history.
type SessionService struct {
	store store.Store
}

func NewSessionService(s store.Store) *SessionService { return &SessionService{store: s} }

// RecordFocus appends one Pomodoro cycle. An absent status defaults to
// completed.
func (s *SessionService) RecordFocus(ctx context.Context, userID string, start, end time.Time, duration int, status string) (*model.FocusSession, error) {
	if status == "" {
		status = model.SessionCompleted
	}
	return s.store.FocusSessions().Create(ctx, &model.FocusSession{
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
		Duration:  duration,
		Status:    status,
	})
}

func (s *SessionService) ListFocus(ctx context.Context, userID string) ([]*model.FocusSession, error) {
	return s.store.FocusSessions().List(ctx, userID)
}

// RecordMeditation appends one meditation sitting.
func (s *SessionService) RecordMeditation(ctx context.Context, userID string, start, end time.Time, duration int) (*model.MeditationSession, error) {
	return s.store.MeditationSessions().Create(ctx, &model.MeditationSession{
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
		Duration:  duration,
	})
}

func (s *SessionService) ListMeditation(ctx context.Context, userID string) ([]*model.MeditationSession, error) {
	return s.store.MeditationSessions().List(ctx, userID)
}
