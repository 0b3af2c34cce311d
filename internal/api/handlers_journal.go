package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/focusflow/focusflow/internal/api/respond"
	"github.com/focusflow/focusflow/internal/api/validate"
	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/services"
)

// JournalHandler serves the journal collection.
type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

// ListEntries GET /journal
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	entries, err := h.svc.ListEntries(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"entries": entries, "count": len(entries)})
}

// CreateEntry POST /journal
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var in struct {
		Title   *string `json:"title,omitempty"`
		Content string  `json:"content"`
		Mood    *string `json:"mood,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.CreateJournalEntry(in.Content, in.Mood); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	entry, err := h.svc.CreateEntry(r.Context(), claims.UserID, in.Title, in.Content, in.Mood)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{"entry": entry})
}

// UpdateEntry PATCH /journal/{id}
func (h *JournalHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var in model.JournalUpdate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if in.Mood != nil && !model.ValidMood(*in.Mood) {
		respond.WriteBadRequest(w, "mood must be one of happy, sad, neutral, stressed")
		return
	}
	if in.Content != nil && *in.Content == "" {
		respond.WriteBadRequest(w, "content must not be empty")
		return
	}

	entry, err := h.svc.UpdateEntry(r.Context(), claims.UserID, mux.Vars(r)["id"], in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"entry": entry})
}

// DeleteEntry DELETE /journal/{id}
func (h *JournalHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteEntry(r.Context(), claims.UserID, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "journal entry deleted"})
}
