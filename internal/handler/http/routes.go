package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router: cross-cutting middleware first, then the
// public routes, then the bearer-protected group.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/api/hello", h.hello)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/test", h.storageDiagnostics)

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/me", h.me)
		r.Get("/settings", h.getSettings)
		r.Put("/settings", h.updateSettings)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
