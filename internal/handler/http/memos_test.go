package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/haeun-dev/memo-server/internal/session"
	"github.com/haeun-dev/memo-server/internal/store"
	"github.com/haeun-dev/memo-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// authedRequest attaches a valid local session for user 7 and programs the
// matching authorization expectation.
func authedRequest(t *testing.T, m *handlerMocks, method, target string, body string) *http.Request {
	t.Helper()

	sess := session.Session{UserID: 7}
	m.auth.EXPECT().
		RequireAuthenticated(gomock.Any(), sess).
		Return(models.User{UserID: 7, Username: "haeun", Email: "haeun@example.com"}, nil)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.AddCookie(sessionCookie(t, m.sessions, sess))
	return req
}

func TestListMemos(t *testing.T) {
	t.Run("lists owned memos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, m := newTestHandler(t, ctrl)

		m.memos.EXPECT().
			ListMemos(gomock.Any(), int64(7)).
			Return([]models.Memo{
				{MemoID: 1, UserID: 7, Title: "first", Content: "a"},
				{MemoID: 2, UserID: 7, Title: "second", Content: "b"},
			}, nil)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, authedRequest(t, m, http.MethodGet, "/api/memos", ""))

		require.Equal(t, http.StatusOK, rec.Code)

		var got []models.Memo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "first", got[0].Title)
	})

	t.Run("no memos yields an empty JSON array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, m := newTestHandler(t, ctrl)

		m.memos.EXPECT().ListMemos(gomock.Any(), int64(7)).Return(nil, nil)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, authedRequest(t, m, http.MethodGet, "/api/memos", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("anonymous request answers 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, _ := newTestHandler(t, ctrl)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/memos", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateMemoHandler(t *testing.T) {
	t.Run("creates and answers 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, m := newTestHandler(t, ctrl)

		m.memos.EXPECT().
			CreateMemo(gomock.Any(), int64(7), models.MemoCreateRequest{Title: "groceries", Content: "milk"}).
			Return(models.Memo{MemoID: 3, UserID: 7, Title: "groceries", Content: "milk"}, nil)

		body := `{"title":"groceries","content":"milk"}`
		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, authedRequest(t, m, http.MethodPost, "/api/memos", body))

		require.Equal(t, http.StatusCreated, rec.Code)

		var got models.Memo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(3), got.MemoID)
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, m := newTestHandler(t, ctrl)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, authedRequest(t, m, http.MethodPost, "/api/memos", "{broken"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateMemoHandler(t *testing.T) {
	t.Run("updates and answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, m := newTestHandler(t, ctrl)

		m.memos.EXPECT().
			UpdateMemo(gomock.Any(), int64(3), int64(7), gomock.Any()).
			Return(models.Memo{MemoID: 3, UserID: 7, Title: "renamed", Content: "milk"}, nil)

		body := `{"title":"renamed"}`
		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, authedRequest(t, m, http.MethodPut, "/api/memos/3", body))

		require.Equal(t, http.StatusOK, rec.Code)

		var got models.Memo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "renamed", got.Title)
	})

	t.Run("non-numeric memo id answers 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, m := newTestHandler(t, ctrl)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, authedRequest(t, m, http.MethodPut, "/api/memos/abc", `{"title":"x"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign memo answers 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, m := newTestHandler(t, ctrl)

		m.memos.EXPECT().
			UpdateMemo(gomock.Any(), int64(3), int64(7), gomock.Any()).
			Return(models.Memo{}, store.ErrMemoNotFound)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, authedRequest(t, m, http.MethodPut, "/api/memos/3", `{"title":"x"}`))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteMemoHandler(t *testing.T) {
	t.Run("deletes and answers 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, m := newTestHandler(t, ctrl)

		m.memos.EXPECT().DeleteMemo(gomock.Any(), int64(3), int64(7)).Return(nil)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, authedRequest(t, m, http.MethodDelete, "/api/memos/3", ""))

		require.Equal(t, http.StatusOK, rec.Code)

		var got models.MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.True(t, got.Success)
	})

	t.Run("foreign memo answers 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h, m := newTestHandler(t, ctrl)

		m.memos.EXPECT().
			DeleteMemo(gomock.Any(), int64(3), int64(7)).
			Return(store.ErrMemoNotFound)

		rec := httptest.NewRecorder()
		h.Init().ServeHTTP(rec, authedRequest(t, m, http.MethodDelete, "/api/memos/3", ""))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
