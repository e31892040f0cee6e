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
	router.Use(middleware.Compress(5, "application/json"))

	// every sync route requires an authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)

		r.Post("/api/sync", h.processSync)
		r.Post("/api/sync/register", h.registerClient)
		r.Get("/api/sync/devices", h.listDevices)
		r.Delete("/api/sync/devices/{deviceID}", h.unregisterDevice)
		r.Get("/api/sync/delta", h.getDeltaChanges)
		r.Get("/api/sync/conflicts", h.getUnresolvedConflicts)
		r.Post("/api/sync/conflicts/{conflictID}", h.resolveConflict)
		r.Post("/api/sync/retry", h.retryFailedSync)
		r.Get("/api/sync/status", h.syncStatus)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
