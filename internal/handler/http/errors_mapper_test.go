package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/service"
	"github.com/haeun-dev/memo-server/internal/store"
	"github.com/haeun-dev/memo-server/internal/validators"
	"github.com/haeun-dev/memo-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized},
		{"not authorized", service.ErrNotAuthorized, http.StatusUnauthorized},
		{"weak password", validators.ErrWeakPassword, http.StatusBadRequest},
		{"title too long", validators.ErrTitleTooLong, http.StatusBadRequest},
		{"unknown provider", ErrUnknownProvider, http.StatusNotFound},
		{"state mismatch", ErrStateMismatch, http.StatusBadRequest},
		{"token exchange failed", oauth.ErrTokenExchange, http.StatusBadGateway},
		{"username taken", store.ErrUsernameAlreadyExists, http.StatusConflict},
		{"duplicate identity", store.ErrDuplicateIdentity, http.StatusConflict},
		{"user missing", store.ErrUserNotFound, http.StatusNotFound},
		{"memo missing", store.ErrMemoNotFound, http.StatusNotFound},
		{"query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unmapped error", errors.New("something odd"), http.StatusInternalServerError},
		{
			"wrapped sentinel keeps its status",
			fmt.Errorf("listing memos ended with error: %w", store.ErrMemoNotFound),
			http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	newRequest := func() *http.Request {
		l := logger.Nop()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		return req.WithContext(l.WithContext(req.Context()))
	}

	t.Run("client errors carry their message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, newRequest(), service.ErrWrongPassword)

		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp models.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, service.ErrWrongPassword.Error(), resp.Message)
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		writeError(rec, newRequest(), fmt.Errorf("%w: connection to 10.0.0.5 refused", store.ErrExecutingQuery))

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp models.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Message)
		assert.NotContains(t, resp.Message, "10.0.0.5")
	})
}
