package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	return NewHandler(market.NewAnalyzer(logger), logger)
}

func TestHandleAnalyze(t *testing.T) {
	handler := newTestHandler()

	body := `{"region":"north","price_history":[300000,301000,302500,304000,305000,307000,309000],"monthly_rent":1800,"years":3}`
	w := httptest.NewRecorder()
	handler.HandleAnalyze(w, httptest.NewRequest("POST", "/api/market/analysis", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data     market.Analysis        `json:"data"`
		Metadata map[string]interface{} `json:"metadata"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))

	assert.Equal(t, "north", response.Data.Region)
	assert.Equal(t, 309000.0, response.Data.CurrentPrice)
	assert.Equal(t, market.TrendRising, response.Data.Trend)
	assert.Len(t, response.Data.Projections, 3)
	assert.Equal(t, 7.0, response.Metadata["months"])
}

func TestHandleAnalyze_BadInput(t *testing.T) {
	handler := newTestHandler()

	w := httptest.NewRecorder()
	handler.HandleAnalyze(w, httptest.NewRequest("POST", "/api/market/analysis", strings.NewReader(`{"price_history":[],"years":3}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	handler.HandleAnalyze(w, httptest.NewRequest("POST", "/api/market/analysis", strings.NewReader(`nope`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRoutes(t *testing.T) {
	handler := newTestHandler()
	router := chi.NewRouter()

	assert.NotPanics(t, func() {
		handler.RegisterRoutes(router)
	}, "RegisterRoutes should not panic")
}
