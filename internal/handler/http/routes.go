package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the verification API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// device routes
	router.Group(func(r chi.Router) {
		r.Post("/api/registration", h.registerTest)
		r.Post("/api/testresult", h.getTestResult)
	})

	// lab upload
	router.Put("/api/lab/results", h.saveLabResult)

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
