// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/okian/vital/internal/domain/table"
	"github.com/okian/vital/internal/report"
	"github.com/okian/vital/pkg/metrics"
)

// RunsHandler serves retained runs and their CSV exports.
type RunsHandler struct {
	deps Dependencies
}

// NewRunsHandler creates a new runs handler.
func NewRunsHandler(deps Dependencies) *RunsHandler {
	return &RunsHandler{deps: deps}
}

// HandleRuns routes GET /api/runs/{id}/unified.csv and
// GET /api/runs/{id}/summary.csv.
func (h *RunsHandler) HandleRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/runs/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" {
		writeError(w, http.StatusNotFound, "not_found", errors.New("run export not found"))
		return
	}

	run, ok := h.deps.Run(parts[0])
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", errors.New("run not found"))
		return
	}

	label := strings.Join(run.Countries, "-")
	stamp := run.StartedAt.Format("20060102_150405")

	switch parts[1] {
	case "unified.csv":
		serveCSV(w, fmt.Sprintf("health_kpis_%s_%s.csv", label, stamp), func() error {
			return report.WriteUnifiedCSV(w, run.Table)
		})
	case "summary.csv":
		serveCSV(w, fmt.Sprintf("health_kpis_%s_%s_summary.csv", label, stamp), func() error {
			return report.WritePivotCSV(w, table.PivotByYear(run.Table))
		})
	default:
		writeError(w, http.StatusNotFound, "not_found", errors.New("run export not found"))
	}
}

func serveCSV(w http.ResponseWriter, filename string, write func() error) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := write(); err != nil {
		// Headers are already gone; nothing more useful to send.
		return
	}
	metrics.RecordCSVExport()
}
