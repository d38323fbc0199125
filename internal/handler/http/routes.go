package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	notesRoute   = "/api/notes"
	versionRoute = "/api/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withRateLimit)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get(versionRoute, h.getHostVersion)

	router.Get(notesRoute, h.getNotes)
	router.With(h.saveHashing).Put(notesRoute, h.saveNotes)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
