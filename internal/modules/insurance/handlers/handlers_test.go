package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/insurance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleEstimate(t *testing.T) {
	handler := NewHandler(zerolog.Nop())

	body := `{"square_feet":2000,"home_age":10,"liability_limit":100000}`
	w := httptest.NewRecorder()
	handler.HandleEstimate(w, httptest.NewRequest("POST", "/api/insurance/estimate", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data insurance.Quote `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	assert.InDelta(t, 1050, response.Data.AnnualPremium, 1e-9)
	assert.InDelta(t, 87.5, response.Data.MonthlyPremium, 1e-9)
	assert.Len(t, response.Data.Factors, 5)
}

func TestHandleEstimate_BadInput(t *testing.T) {
	handler := NewHandler(zerolog.Nop())

	w := httptest.NewRecorder()
	handler.HandleEstimate(w, httptest.NewRequest("POST", "/api/insurance/estimate", strings.NewReader(`{"square_feet":0}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	handler.HandleEstimate(w, httptest.NewRequest("POST", "/api/insurance/estimate", strings.NewReader(`[`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFactors(t *testing.T) {
	handler := NewHandler(zerolog.Nop())

	w := httptest.NewRecorder()
	handler.HandleFactors(w, httptest.NewRequest("GET", "/api/insurance/factors", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data map[string]map[string]float64 `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, 0.9, response.Data["construction"]["masonry"])
	assert.Equal(t, 10.0, response.Data["security_features"]["monitored_alarm"])
}

func TestRegisterRoutes(t *testing.T) {
	handler := NewHandler(zerolog.New(nil).Level(zerolog.Disabled))
	router := chi.NewRouter()

	assert.NotPanics(t, func() {
		handler.RegisterRoutes(router)
	}, "RegisterRoutes should not panic")
}
