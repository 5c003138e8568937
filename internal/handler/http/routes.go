package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)

		r.With(middleware.Compress(5, "application/json")).
			Get("/{category}/", h.listEntries)

		r.With(h.withRateLimit).
			Post("/{category}/{entry}/{operation}/", h.executeOperation)
	})

	return router
}
