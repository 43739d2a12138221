// Package handlers provides HTTP handlers for market analysis.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/market"
)

// Handler handles market HTTP requests
type Handler struct {
	analyzer *market.Analyzer
	log      zerolog.Logger
}

// NewHandler creates a new market handler
func NewHandler(analyzer *market.Analyzer, log zerolog.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		log:      log.With().Str("handler", "market").Logger(),
	}
}

// HandleAnalyze handles POST /api/market/analysis
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var in market.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	analysis, err := h.analyzer.Analyze(in)
	if err != nil {
		if market.IsInputError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Market analysis failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": analysis,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
			"months":    len(in.PriceHistory),
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
