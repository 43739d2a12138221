// Package handlers exposes the shared loan and growth formulas over HTTP.
package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/pkg/formulas"
)

// Input limits for the formula endpoints
const (
	maxTermYears    = 50
	maxGrowthYears  = 100
	frequencyAnnual = "annual"
)

// Handler handles formula HTTP requests
type Handler struct {
	log zerolog.Logger
}

// NewHandler creates a new formulas handler
func NewHandler(log zerolog.Logger) *Handler {
	return &Handler{
		log: log.With().Str("handler", "formulas").Logger(),
	}
}

// PaymentRequest represents a loan payment calculation request
type PaymentRequest struct {
	Principal       float64 `json:"principal"`
	AnnualRate      float64 `json:"annual_rate"`
	TermYears       int     `json:"term_years"`
	Frequency       string  `json:"frequency"` // "annual" (default) or "monthly"
	IncludeSchedule bool    `json:"include_schedule"`
}

// GrowthRequest represents a compound growth projection request
type GrowthRequest struct {
	BaseValue  float64 `json:"base_value"`
	AnnualRate float64 `json:"annual_rate"`
	Years      int     `json:"years"`
}

// HandlePayment handles POST /api/formulas/payment
func (h *Handler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !finite(req.Principal, req.AnnualRate) {
		http.Error(w, "principal and annual_rate must be finite numbers", http.StatusBadRequest)
		return
	}
	if req.Principal < 0 || req.AnnualRate < 0 {
		http.Error(w, "principal and annual_rate must not be negative", http.StatusBadRequest)
		return
	}
	if req.TermYears <= 0 || req.TermYears > maxTermYears {
		http.Error(w, "term_years must be between 1 and 50", http.StatusBadRequest)
		return
	}

	periodsPerYear := formulas.PeriodsAnnual
	switch req.Frequency {
	case "", frequencyAnnual:
	case "monthly":
		periodsPerYear = formulas.PeriodsMonthly
	default:
		http.Error(w, "frequency must be annual or monthly", http.StatusBadRequest)
		return
	}

	schedule := formulas.AmortizationSchedule(req.Principal, req.AnnualRate, req.TermYears, periodsPerYear)
	totalInterest := formulas.TotalInterest(schedule)

	data := map[string]interface{}{
		"payment":          formulas.PeriodicPayment(req.Principal, req.AnnualRate, req.TermYears, periodsPerYear),
		"periods":          len(schedule),
		"periods_per_year": periodsPerYear,
		"total_interest":   totalInterest,
		"total_paid":       req.Principal + totalInterest,
	}
	if req.IncludeSchedule {
		data["schedule"] = schedule
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": data,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGrowth handles POST /api/formulas/growth
func (h *Handler) HandleGrowth(w http.ResponseWriter, r *http.Request) {
	var req GrowthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !finite(req.BaseValue, req.AnnualRate) {
		http.Error(w, "base_value and annual_rate must be finite numbers", http.StatusBadRequest)
		return
	}
	if req.AnnualRate <= -100 {
		http.Error(w, "annual_rate must be greater than -100", http.StatusBadRequest)
		return
	}
	if req.Years <= 0 || req.Years > maxGrowthYears {
		http.Error(w, "years must be between 1 and 100", http.StatusBadRequest)
		return
	}

	values := formulas.ProjectGrowth(req.BaseValue, req.AnnualRate, req.Years)
	final := values[len(values)-1]

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"values":       values,
			"final_value":  final,
			"total_growth": final - req.BaseValue,
			"cagr":         formulas.CAGR(req.BaseValue, final, float64(req.Years)),
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
