package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/focusflow/focusflow/internal/api/respond"
	"github.com/focusflow/focusflow/internal/api/validate"
	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/services"
)

// SessionHandler serves the append-only focus and meditation logs.
type SessionHandler struct {
	svc *services.SessionService
}

func NewSessionHandler(svc *services.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// RecordFocus POST /pomodoro
func (h *SessionHandler) RecordFocus(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var in struct {
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
		Duration  int       `json:"duration"`
		Status    string    `json:"status,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.CreateSession(in.StartTime, in.EndTime, in.Duration); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if in.Status != "" && !model.ValidSessionStatus(in.Status) {
		respond.WriteBadRequest(w, "status must be completed or skipped")
		return
	}

	session, err := h.svc.RecordFocus(r.Context(), claims.UserID, in.StartTime, in.EndTime, in.Duration, in.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{"session": session})
}

// ListFocus GET /pomodoro
func (h *SessionHandler) ListFocus(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	sessions, err := h.svc.ListFocus(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions, "count": len(sessions)})
}

// RecordMeditation POST /meditation
func (h *SessionHandler) RecordMeditation(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	var in struct {
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
		Duration  int       `json:"duration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.CreateSession(in.StartTime, in.EndTime, in.Duration); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	session, err := h.svc.RecordMeditation(r.Context(), claims.UserID, in.StartTime, in.EndTime, in.Duration)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{"session": session})
}

// ListMeditation GET /meditation
func (h *SessionHandler) ListMeditation(w http.ResponseWriter, r *http.Request) {
	claims, ok := callerClaims(w, r)
	if !ok {
		return
	}
	sessions, err := h.svc.ListMeditation(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions, "count": len(sessions)})
}
