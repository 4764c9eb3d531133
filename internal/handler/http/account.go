package http

import (
	"encoding/json"
	"net/http"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/utils"
	"github.com/haeun-dev/memo-server/models"
)

// findUsername mails the username registered under the posted email.
func (h *Handler) findUsername(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSON)
		return
	}

	if err := h.services.AccountService.SendUsername(ctx, request.Email); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "username sent"}, http.StatusOK)
}

// resetPassword mails a temporary password to the account matching the
// posted (username, email) pair.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.UsernameEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSON)
		return
	}

	if err := h.services.AccountService.ResetPassword(ctx, request.Username, request.Email); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "temporary password sent"}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PasswordChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSON)
		return
	}

	if err := h.services.AccountService.ChangePassword(ctx, request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "password changed"}, http.StatusOK)
}

// withdraw deletes the authenticated account with all its memos. The
// session cookie is cleared before the response so the browser cannot
// replay a session naming a deleted user.
func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, sess, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	if err := h.services.AccountService.Withdraw(ctx, owner, sess); err != nil {
		writeError(w, r, err)
		return
	}

	h.sessions.Clear(w)

	log.Info().Int64("user_id", owner.UserID).Msg("account withdrawn")

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "account deleted"}, http.StatusOK)
}
