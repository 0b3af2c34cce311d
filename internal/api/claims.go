package api

import (
	"net/http"

	"github.com/focusflow/focusflow/internal/api/respond"
	"github.com/focusflow/focusflow/internal/auth"
)

// callerClaims fetches the verified claims placed on the context by the
// auth middleware. Absence means the route was wired without the
// middleware, which is a server bug, but callers still get a clean 401.
func callerClaims(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		respond.WriteError(w, http.StatusUnauthorized, "no token provided")
		return nil, false
	}
	return claims, true
}
