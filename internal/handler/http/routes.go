package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)

		r.Get("/auth/{provider}/login", h.oauthLogin)
		r.Get("/auth/{provider}/callback", h.oauthCallback)

		r.Post("/api/account/find-username", h.findUsername)
		r.Post("/api/account/reset-password", h.resetPassword)
		r.Post("/api/account/change-password", h.changePassword)
	})

	// routes requiring an authenticated session
	router.Group(func(r chi.Router) {
		r.Get("/api/me", h.currentUser)

		r.Get("/api/memos", h.listMemos)
		r.Post("/api/memos", h.createMemo)
		r.Put("/api/memos/{memoID}", h.updateMemo)
		r.Delete("/api/memos/{memoID}", h.deleteMemo)

		r.Delete("/api/account", h.withdraw)
	})

	return router
}
