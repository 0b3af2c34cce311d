package client

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListJournal returns the caller's journal entries, newest first.
// Anonymous sessions read the local guest store.
func (c *Client) ListJournal(ctx context.Context) ([]*JournalEntry, error) {
	if c.session.State() == StateAnonymous {
		if c.local == nil {
			return nil, ErrNoLocalStore
		}
		return c.local.ListJournal()
	}
	var out struct {
		Entries []*JournalEntry `json:"entries"`
	}
	if err := c.doJSON(ctx, "GET", "/journal", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

// CreateJournalEntry writes a new entry. Anonymous sessions append to
// the guest store.
func (c *Client) CreateJournalEntry(ctx context.Context, title *string, content string, mood string) (*JournalEntry, error) {
	if c.session.State() == StateAnonymous {
		return c.guestCreateEntry(title, content, mood)
	}
	in := map[string]interface{}{"content": content}
	if title != nil {
		in["title"] = *title
	}
	if mood != "" {
		in["mood"] = mood
	}
	var out struct {
		Entry *JournalEntry `json:"entry"`
	}
	if err := c.doJSON(ctx, "POST", "/journal", in, &out, true); err != nil {
		return nil, err
	}
	return out.Entry, nil
}

// UpdateJournalEntry applies a partial change to an entry. Anonymous
// sessions patch the guest store in place.
func (c *Client) UpdateJournalEntry(ctx context.Context, entryID string, upd JournalEntryUpdate) (*JournalEntry, error) {
	if c.session.State() == StateAnonymous {
		return c.guestUpdateEntry(entryID, upd)
	}
	var out struct {
		Entry *JournalEntry `json:"entry"`
	}
	if err := c.doJSON(ctx, "PATCH", "/journal/"+entryID, upd, &out, true); err != nil {
		return nil, err
	}
	return out.Entry, nil
}

// DeleteJournalEntry removes an entry.
func (c *Client) DeleteJournalEntry(ctx context.Context, entryID string) error {
	if c.session.State() == StateAnonymous {
		return c.guestDeleteEntry(entryID)
	}
	return c.doJSON(ctx, "DELETE", "/journal/"+entryID, nil, nil, true)
}

func (c *Client) guestCreateEntry(title *string, content, mood string) (*JournalEntry, error) {
	if c.local == nil {
		return nil, ErrNoLocalStore
	}
	if mood == "" {
		mood = "neutral"
	}
	entry := &JournalEntry{
		ID:           uuid.New().String(),
		Title:        title,
		Content:      content,
		Mood:         mood,
		CreationTime: time.Now().UTC(),
	}
	entries, err := c.local.ListJournal()
	if err != nil {
		return nil, err
	}
	entries = append([]*JournalEntry{entry}, entries...)
	if err := c.local.SaveJournal(entries); err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *Client) guestUpdateEntry(entryID string, upd JournalEntryUpdate) (*JournalEntry, error) {
	if c.local == nil {
		return nil, ErrNoLocalStore
	}
	entries, err := c.local.ListJournal()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID == entryID {
			if upd.Title != nil {
				e.Title = upd.Title
			}
			if upd.Content != nil {
				e.Content = *upd.Content
			}
			if upd.Mood != nil {
				e.Mood = *upd.Mood
			}
			now := time.Now().UTC()
			e.UpdateTime = &now
			if err := c.local.SaveJournal(entries); err != nil {
				return nil, err
			}
			return e, nil
		}
	}
	return nil, &APIError{StatusCode: 404, Message: "not found"}
}

func (c *Client) guestDeleteEntry(entryID string) error {
	if c.local == nil {
		return ErrNoLocalStore
	}
	entries, err := c.local.ListJournal()
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return &APIError{StatusCode: 404, Message: "not found"}
	}
	return c.local.SaveJournal(kept)
}
