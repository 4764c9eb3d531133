package http

import (
	"encoding/json"
	"net/http"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/service"
	"github.com/haeun-dev/memo-server/internal/session"
	"github.com/haeun-dev/memo-server/internal/utils"
	"github.com/haeun-dev/memo-server/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSON)
		return
	}

	registered, err := h.services.IdentityService.RegisterLocal(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registered.UserID).Str("username", registered.Username).Msg("user registered")

	utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSON)
		return
	}

	foundUser, err := h.services.IdentityService.LoginLocal(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.sessions.Issue(w, session.Session{UserID: foundUser.UserID}); err != nil {
		log.Err(err).Msg("issuing session cookie failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// logout clears the session cookie. Logging out without a session is not an
// error: the end state is the same.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "logged out"}, http.StatusOK)
}

// currentUser returns the user resolved from the session cookie.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	foundUser, _, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

// requireUser resolves the session to its user or answers 401. The bool
// result reports whether the handler may proceed.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (models.User, session.Session, bool) {
	ctx := r.Context()

	sess, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNotAuthorized)
		return models.User{}, session.Session{}, false
	}

	foundUser, err := h.services.AuthService.RequireAuthenticated(ctx, sess)
	if err != nil {
		writeError(w, r, err)
		return models.User{}, session.Session{}, false
	}

	return foundUser, sess, true
}
