package http

import (
	"errors"
	"net/http"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/session"
	"github.com/haeun-dev/memo-server/internal/utils"
)

// withSession decodes the session cookie and stores the result in the
// request context. It never rejects a request: routes that need an
// authenticated user resolve it through requireUser, so public routes can
// still observe an anonymous session.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Read(r)
		if err != nil {
			if errors.Is(err, session.ErrInvalidSession) {
				// Expired or tampered cookie: drop it so the browser stops
				// replaying a dead session.
				logger.FromRequest(r).Debug().Msg("discarding invalid session cookie")
				h.sessions.Clear(w)
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), sess)))
	})
}
