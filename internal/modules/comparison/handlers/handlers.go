// Package handlers provides HTTP handlers for property comparison.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/comparison"
)

// Handler handles comparison HTTP requests
type Handler struct {
	comparer *comparison.Comparer
	log      zerolog.Logger
}

// NewHandler creates a new comparison handler
func NewHandler(comparer *comparison.Comparer, log zerolog.Logger) *Handler {
	return &Handler{
		comparer: comparer,
		log:      log.With().Str("handler", "comparison").Logger(),
	}
}

// CompareRequest represents a property comparison request
type CompareRequest struct {
	Properties []comparison.Property `json:"properties"`
}

// HandleCompare handles POST /api/comparison
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.comparer.Compare(req.Properties)
	if err != nil {
		if errors.Is(err, comparison.ErrNoProperties) ||
			errors.Is(err, comparison.ErrTooManyProperties) ||
			errors.Is(err, comparison.ErrMissingLabel) ||
			errors.Is(err, comparison.ErrDuplicateLabel) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Comparison failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": result,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"count":     len(result.Properties),
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
