package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, middleware.Compress(5, "application/json"))

	router.Get("/status", h.status)
	router.Get("/version", h.getServerVersion)

	// credential endpoints are throttled per client address
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/delete-user", h.deleteUser)
	})

	// the token is checked before the body is read
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.saveDataHashing)
		r.Post("/save-data", h.saveData)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
