package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/focusflow/focusflow/internal/api/respond"
	"github.com/focusflow/focusflow/internal/api/validate"
	"github.com/focusflow/focusflow/internal/model"
	"github.com/focusflow/focusflow/internal/services"
)

// AuthHandler serves the unauthenticated signup and signin routes.
type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// SignUp POST /signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.SignUp(in.Name, in.Email, in.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	if _, err := h.svc.Register(r.Context(), in.Name, in.Email, in.Password); err != nil {
		if errors.Is(err, model.ErrConflict) {
			respond.WriteConflict(w, "user with email already exists")
			return
		}
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": "user registered successfully"})
}

// SignIn POST /signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	if err := validate.SignIn(in.Email, in.Password); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	u, token, err := h.svc.Authenticate(r.Context(), in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			respond.WriteNotFound(w, "user not found")
		case errors.Is(err, model.ErrUnauthorized):
			respond.WriteError(w, http.StatusUnauthorized, "password did not match")
		default:
			writeServiceError(w, err)
		}
		return
	}

	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "sign in successful",
		"token":   token,
		"id":      u.ID,
		"name":    u.Name,
		"email":   u.Email,
	})
}
