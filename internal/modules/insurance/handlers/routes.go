package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all insurance routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/insurance", func(r chi.Router) {
		r.Post("/estimate", h.HandleEstimate)
		r.Get("/factors", h.HandleFactors)
	})
}
