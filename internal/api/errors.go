package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/focusflow/focusflow/internal/api/respond"
	"github.com/focusflow/focusflow/internal/model"
)

// writeServiceError maps sentinel service errors onto HTTP statuses.
// Anything unrecognized is logged with its cause and surfaced as a
// generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, "not found")
	case errors.Is(err, model.ErrConflict):
		respond.WriteConflict(w, "already exists")
	case errors.Is(err, model.ErrUnauthorized):
		respond.WriteError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	default:
		log.Error().Stack().Err(err).Msg("request failed")
		respond.WriteInternalError(w, "server error")
	}
}
