package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all renovation routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/renovation", func(r chi.Router) {
		r.Post("/estimate", h.HandleEstimate)
		r.Get("/catalog", h.HandleCatalog)
	})
}
