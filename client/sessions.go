package client

import (
	"context"
	"time"
)

// RecordFocusSession logs one Pomodoro cycle. Session logs are never
// kept locally; an anonymous caller gets ErrNotAuthenticated.
func (c *Client) RecordFocusSession(ctx context.Context, start, end time.Time, duration int, status string) (*FocusSession, error) {
	in := map[string]interface{}{"startTime": start, "endTime": end, "duration": duration}
	if status != "" {
		in["status"] = status
	}
	var out struct {
		Session *FocusSession `json:"session"`
	}
	if err := c.doJSON(ctx, "POST", "/pomodoro", in, &out, true); err != nil {
		return nil, err
	}
	return out.Session, nil
}

// ListFocusSessions returns the caller's focus session log.
func (c *Client) ListFocusSessions(ctx context.Context) ([]*FocusSession, error) {
	var out struct {
		Sessions []*FocusSession `json:"sessions"`
	}
	if err := c.doJSON(ctx, "GET", "/pomodoro", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

// RecordMeditationSession logs one meditation sitting.
func (c *Client) RecordMeditationSession(ctx context.Context, start, end time.Time, duration int) (*MeditationSession, error) {
	in := map[string]interface{}{"startTime": start, "endTime": end, "duration": duration}
	var out struct {
		Session *MeditationSession `json:"session"`
	}
	if err := c.doJSON(ctx, "POST", "/meditation", in, &out, true); err != nil {
		return nil, err
	}
	return out.Session, nil
}

// ListMeditationSessions returns the caller's meditation log.
func (c *Client) ListMeditationSessions(ctx context.Context) ([]*MeditationSession, error) {
	var out struct {
		Sessions []*MeditationSession `json:"sessions"`
	}
	if err := c.doJSON(ctx, "GET", "/meditation", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}
