package http

import (
	"net/http"

	"github.com/loginapp/authserver/internal/logger"
	"github.com/loginapp/authserver/models"
)

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	sess, ok := h.sessions.Load(r)
	if !ok || !sess.Authenticated() {
		log.Debug().Bool("session_found", ok).Msg("current user requested without authenticated session")
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	writeJSON(w, models.UserResponse{
		UserID:   sess.UserID,
		Username: sess.Username,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.sessions.Destroy(w, r); err != nil {
		log.Err(err).Msg("session destruction failed")
		writeError(w, http.StatusInternalServerError, "Logout failed")
		return
	}

	writeJSON(w, models.StatusResponse{
		Success: true,
		Message: "Logged out successfully",
	}, http.StatusOK)
}
