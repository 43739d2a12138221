package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all projection routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/projections", func(r chi.Router) {
		r.Post("/", h.HandleCalculate)
		r.Post("/scenarios", h.HandleScenarios)
		r.Get("/live", h.HandleLive)
	})
}
