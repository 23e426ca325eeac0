package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Gthulhu/topology/aggregator/domain"
	"github.com/Gthulhu/topology/aggregator/errs"
	"github.com/Gthulhu/topology/pkg/logger"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Version is reported by GET /version; overridden at build time with -ldflags.
var Version = "1.0.0"

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type Params struct {
	fx.In
	Svc      domain.Service
	Gatherer prometheus.Gatherer
}

func NewHandler(params Params) (*Handler, error) {
	return &Handler{
		Svc:      params.Svc,
		Gatherer: params.Gatherer,
	}, nil
}

type Handler struct {
	Svc      domain.Service
	Gatherer prometheus.Gatherer
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// ErrorResponse writes a generic error body. The cause is only logged.
func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Int("status_code", status).Msg(errMsg)
	}
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
	}
	h.JSONResponse(ctx, w, status, resp)
}

// HandleError maps a service error onto an HTTP status.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Message, err)
		return
	}
	switch {
	case errors.Is(err, domain.ErrInvalidPattern):
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid hostname collapse pattern", err)
	case errors.Is(err, domain.ErrUnsupportedFormat):
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Unsupported diagram format", err)
	case errors.Is(err, domain.ErrUpstreamUnavailable), errors.Is(err, domain.ErrMalformedSnapshot):
		h.ErrorResponse(ctx, w, http.StatusBadGateway, "Failed to collect topology from upstream", err)
	default:
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Internal server error", err)
	}
}

// Version godoc
// @Summary Server version
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /version [get]
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message":   "Netstat Topology API Server",
		"version":   Version,
		"endpoints": "/aggregate.json (GET), /graph.json (GET), /diagram.svg (GET), /diagram.dot (GET), /metrics (GET), /health (GET)",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

// HealthCheck godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "Netstat Topology API Server",
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
