// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	service "github.com/okian/vital/internal/app"
	"github.com/okian/vital/internal/domain/catalog"
	"github.com/okian/vital/internal/domain/table"
	"github.com/okian/vital/internal/report"
)

// ExtractHandler runs extractions on behalf of the browser UI.
type ExtractHandler struct {
	deps Dependencies
}

// NewExtractHandler creates a new extract handler.
func NewExtractHandler(deps Dependencies) *ExtractHandler {
	return &ExtractHandler{deps: deps}
}

// extractRequest selects countries and KPIs by display name.
type extractRequest struct {
	Countries []string `json:"countries"`
	KPIs      []string `json:"kpis"`
}

func (e extractRequest) selection() (service.Selection, error) {
	sel := service.Selection{Countries: e.Countries}
	for _, name := range e.KPIs {
		ind, ok := catalog.Find(name)
		if !ok {
			return service.Selection{}, fmt.Errorf("unknown KPI %q", name)
		}
		sel.Indicators = append(sel.Indicators, ind)
	}
	return sel, nil
}

// extractResponse carries every result view the UI offers.
type extractResponse struct {
	RunID      string                  `json:"run_id"`
	Summary    report.Summary          `json:"summary"`
	Overview   *table.Pivot            `json:"overview"`
	PerCountry map[string]*table.Pivot `json:"per_country"`
	PerSource  map[string]*table.Pivot `json:"per_source"`
	Records    table.Table             `json:"records"`
	Warnings   []string                `json:"warnings"`
	Exports    exportLinks             `json:"exports"`
}

type exportLinks struct {
	Unified string `json:"unified"`
	Summary string `json:"summary"`
}

// HandleExtract handles POST /api/extract requests.
func (h *ExtractHandler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid JSON body"))
		return
	}

	sel, err := req.selection()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	run, err := h.deps.Extract(r.Context(), sel)
	switch {
	case errors.Is(err, service.ErrEmptySelection), errors.Is(err, service.ErrNoCountry):
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "extract_failed", err)
		return
	}

	resp := extractResponse{
		RunID:      run.ID,
		Summary:    report.Summarize(run.Table),
		Overview:   overviewPivot(run),
		PerCountry: map[string]*table.Pivot{},
		PerSource:  map[string]*table.Pivot{},
		Records:    run.Table,
		Warnings:   run.Warnings,
		Exports: exportLinks{
			Unified: "/api/runs/" + run.ID + "/unified.csv",
			Summary: "/api/runs/" + run.ID + "/summary.csv",
		},
	}
	for _, country := range run.Table.Countries() {
		resp.PerCountry[country] = table.PivotByYear(run.Table.FilterCountry(country))
	}
	for _, src := range run.Table.Sources() {
		resp.PerSource[string(src)] = table.PivotByYear(run.Table.FilterSource(src))
	}

	writeJSON(w, http.StatusOK, resp)
}

func overviewPivot(run *service.Run) *table.Pivot {
	if len(run.Countries) > 1 {
		return table.PivotByCountryYear(run.Table)
	}
	return table.PivotByYear(run.Table)
}
