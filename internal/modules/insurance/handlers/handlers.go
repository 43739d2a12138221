// Package handlers provides HTTP handlers for insurance estimates.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/insurance"
)

// Handler handles insurance HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new insurance handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "insurance").Logger(),
	}
}

// HandleEstimate handles POST /api/insurance/estimate
func (h *Handler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	var in insurance.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	estimate, err := insurance.Estimate(in)
	if err != nil {
		if errors.Is(err, insurance.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Insurance estimate failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": estimate,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleFactors handles GET /api/insurance/factors
func (h *Handler) HandleFactors(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"construction":      insurance.ConstructionMultipliers,
			"location_risk":     insurance.LocationMultipliers,
			"security_features": insurance.SecurityDiscounts,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
