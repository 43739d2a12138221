// Package handlers provides HTTP handlers for investment projections.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/sameer10342432/realestate-tools/internal/modules/projection"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// liveMessageTimeout bounds a single calculation on the live channel
const liveMessageTimeout = 10 * time.Second

// Handler handles projection HTTP requests
type Handler struct {
	service        *projection.Service
	originPatterns []string
	log            zerolog.Logger
}

// NewHandler creates a new projection handler. allowedOrigins are the CORS
// origins that may also open the live channel; the request's own host is
// always accepted.
func NewHandler(service *projection.Service, allowedOrigins []string, log zerolog.Logger) *Handler {
	return &Handler{
		service:        service,
		originPatterns: originPatterns(allowedOrigins),
		log:            log.With().Str("handler", "projection").Logger(),
	}
}

// originPatterns turns origins such as "https://app.example.com" into the
// host patterns the websocket handshake matches against.
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin == "" {
			continue
		}
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			patterns = append(patterns, u.Host)
			continue
		}
		patterns = append(patterns, origin)
	}
	return patterns
}

// ScenariosRequest runs custom scenarios against one set of assumptions
type ScenariosRequest struct {
	Assumptions projection.Assumptions `json:"assumptions"`
	Scenarios   []projection.Scenario  `json:"scenarios"`
}

// LiveMessage is one outbound frame on the live channel
type LiveMessage struct {
	Type    string              `json:"type"` // "summary" or "error"
	Summary *projection.Summary `json:"summary,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// HandleCalculate handles POST /api/projections
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var a projection.Assumptions
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	summary, err := h.service.Calculate(r.Context(), a)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, envelope(summary))
}

// HandleScenarios handles POST /api/projections/scenarios
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	var req ScenariosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	results, err := h.service.Scenarios(r.Context(), req.Assumptions, req.Scenarios)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, envelope(map[string]interface{}{
		"scenarios": results,
		"count":     len(results),
	}))
}

// HandleLive handles GET /api/projections/live.
// Every inbound assumptions message is answered with one summary or one error frame.
func (h *Handler) HandleLive(w http.ResponseWriter, r *http.Request) {
	// Server read/write timeouts would otherwise carry over to the hijacked connection
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		h.log.Warn().Err(err).Str("origin", r.Header.Get("Origin")).Msg("Failed to accept websocket connection")
		return
	}
	defer conn.CloseNow()

	h.log.Debug().Str("remote", r.RemoteAddr).Msg("Live projection client connected")

	ctx := r.Context()
	for {
		msgType, data, err := conn.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				h.log.Debug().Msg("Live projection client disconnected")
				return
			}
			h.log.Warn().Err(err).Msg("Live projection read failed")
			return
		}

		var a projection.Assumptions
		if msgType != websocket.MessageText || json.Unmarshal(data, &a) != nil {
			if err := h.writeLive(ctx, conn, LiveMessage{Type: "error", Error: "invalid assumptions message"}); err != nil {
				return
			}
			continue
		}

		msg := h.calculateLive(ctx, a)
		if err := h.writeLive(ctx, conn, msg); err != nil {
			h.log.Warn().Err(err).Msg("Live projection write failed")
			return
		}
	}
}

func (h *Handler) calculateLive(ctx context.Context, a projection.Assumptions) LiveMessage {
	calcCtx, cancel := context.WithTimeout(ctx, liveMessageTimeout)
	defer cancel()

	summary, err := h.service.Calculate(calcCtx, a)
	if err != nil {
		return LiveMessage{Type: "error", Error: err.Error()}
	}
	return LiveMessage{Type: "summary", Summary: summary}
}

func (h *Handler) writeLive(ctx context.Context, conn *websocket.Conn, msg LiveMessage) error {
	writeCtx, cancel := context.WithTimeout(ctx, liveMessageTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, msg)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case projection.IsValidationError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "Request cancelled", http.StatusServiceUnavailable)
	default:
		h.log.Error().Err(err).Msg("Projection failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func envelope(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"data": data,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	}
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
