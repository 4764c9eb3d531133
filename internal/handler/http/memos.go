package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/utils"
	"github.com/haeun-dev/memo-server/models"
)

func (h *Handler) listMemos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owner, _, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	memos, err := h.services.MemoService.ListMemos(ctx, owner.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// An owner with no memos gets an empty list, not null.
	if memos == nil {
		memos = []models.Memo{}
	}

	utils.WriteJSON(w, memos, http.StatusOK)
}

func (h *Handler) createMemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, _, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var request models.MemoCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSON)
		return
	}

	created, err := h.services.MemoService.CreateMemo(ctx, owner.UserID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateMemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, _, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	memoID, err := memoIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.MemoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, errInvalidJSON)
		return
	}

	updated, err := h.services.MemoService.UpdateMemo(ctx, memoID, owner.UserID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteMemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owner, _, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	memoID, err := memoIDFromURL(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.MemoService.DeleteMemo(ctx, memoID, owner.UserID); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: "memo deleted"}, http.StatusOK)
}

func memoIDFromURL(r *http.Request) (int64, error) {
	memoID, err := strconv.ParseInt(chi.URLParam(r, "memoID"), 10, 64)
	if err != nil || memoID <= 0 {
		return 0, errInvalidMemoID
	}
	return memoID, nil
}
