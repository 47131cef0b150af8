// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/courseloom/insight/internal/app"
	"github.com/courseloom/insight/internal/domain/tool"
	"github.com/courseloom/insight/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// EvaluateTool runs a stateless assessment tool on request fields.
	EvaluateTool(ctx context.Context, name string, nums map[string]float64, strs map[string]string) (*types.Report, error)

	// EvaluateAuthority runs the channel acquisition and scoring pipeline.
	EvaluateAuthority(ctx context.Context, channelRef string) (*types.AuthorityReport, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	toolsHandler  *ToolsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		toolsHandler:  NewToolsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/tools/", MetricsMiddleware(s.toolsHandler.HandlePostTool, "tools"))
}

// resultResponse is the success envelope: the report rides under "result".
type resultResponse struct {
	Result any `json:"result"`
}

// errorResponse mirrors the OpenAPI error schema.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps pipeline errors onto the API taxonomy: bad input is 400,
// anything that amounts to "nothing to score" is 404, the rest 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, tool.ErrMissingInput),
		errors.Is(err, tool.ErrInvalidInput),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnknownTool),
		errors.Is(err, service.ErrChannelNotFound),
		errors.Is(err, service.ErrNoContent):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
