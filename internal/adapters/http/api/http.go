// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/okian/vital/internal/app"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the extraction service.
type Dependencies interface {
	// Extract runs the full pipeline for a selection.
	Extract(ctx context.Context, sel service.Selection) (*service.Run, error)

	// Run returns a retained run by id.
	Run(id string) (*service.Run, bool)

	// Runs lists retained runs, most recent first.
	Runs() []*service.Run
}

// Server wires HTTP routes for the extraction API.
type Server struct {
	healthHandler    *HealthHandler
	catalogHandler   *CatalogHandler
	extractHandler   *ExtractHandler
	runsHandler      *RunsHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		catalogHandler:   NewCatalogHandler(),
		extractHandler:   NewExtractHandler(deps),
		runsHandler:      NewRunsHandler(deps),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/api/indicators", MetricsMiddleware(s.catalogHandler.HandleIndicators, "indicators"))
	mux.HandleFunc("/api/countries", MetricsMiddleware(s.catalogHandler.HandleCountries, "countries"))
	mux.HandleFunc("/api/extract", MetricsMiddleware(s.extractHandler.HandleExtract, "extract"))
	mux.HandleFunc("/api/runs/", MetricsMiddleware(s.runsHandler.HandleRuns, "runs"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/", s.dashboardHandler.HandleRoot)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
