package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all formula routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/formulas", func(r chi.Router) {
		r.Post("/payment", h.HandlePayment)
		r.Post("/growth", h.HandleGrowth)
	})
}
