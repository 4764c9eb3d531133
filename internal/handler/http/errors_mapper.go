package http

import (
	"errors"
	"net/http"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/service"
	"github.com/haeun-dev/memo-server/internal/store"
	"github.com/haeun-dev/memo-server/internal/utils"
	"github.com/haeun-dev/memo-server/internal/validators"
	"github.com/haeun-dev/memo-server/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrNotAuthorized:       http.StatusUnauthorized,
	service.ErrIncompleteIdentity:  http.StatusBadRequest,

	validators.ErrInvalidUsername:    http.StatusBadRequest,
	validators.ErrWeakPassword:       http.StatusBadRequest,
	validators.ErrPasswordMismatch:   http.StatusBadRequest,
	validators.ErrEmptyEmail:         http.StatusBadRequest,
	validators.ErrEmptyTitle:         http.StatusBadRequest,
	validators.ErrEmptyContent:       http.StatusBadRequest,
	validators.ErrTitleTooLong:       http.StatusBadRequest,
	validators.ErrContentTooLong:     http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:   http.StatusBadRequest,
	validators.ErrPasswordNotChanged: http.StatusBadRequest,

	ErrUnknownProvider: http.StatusNotFound,
	ErrStateMismatch:   http.StatusBadRequest,
	ErrMissingCode:     http.StatusBadRequest,
	errInvalidJSON:     http.StatusBadRequest,
	errInvalidMemoID:   http.StatusBadRequest,

	oauth.ErrTokenExchange: http.StatusBadGateway,
	oauth.ErrUserInfoFetch: http.StatusBadGateway,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrDuplicateIdentity:     http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrMemoNotFound:          http.StatusNotFound,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs the error and answers with the JSON failure envelope and
// the status mapped from the sentinel chain. Internal errors are masked so
// that storage details never leak to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("request failed")

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.MessageResponse{Success: false, Message: message}, status)
}
