package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	// the upgrade needs the bare ResponseWriter, so no access log wrapper here
	router.Get("/ws", h.ws.ServeHTTP)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withLogging)
		r.Use(middleware.Compress(5, "application/json", "text/plain"))

		r.Get("/version", h.getServerVersion)
		r.Get("/health", h.getHealth)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
