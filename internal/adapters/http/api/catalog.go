// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/vital/internal/domain/catalog"
)

// CatalogHandler serves the static indicator and country catalogs.
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// indicatorGroup is one source's block in the indicators response.
type indicatorGroup struct {
	Source     catalog.Source      `json:"source"`
	Indicators []catalog.Indicator `json:"indicators"`
}

// HandleIndicators handles GET /api/indicators requests, grouped by source.
func (h *CatalogHandler) HandleIndicators(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	groups := make([]indicatorGroup, 0, len(catalog.Sources()))
	for _, src := range catalog.Sources() {
		groups = append(groups, indicatorGroup{
			Source:     src,
			Indicators: catalog.BySource(src),
		})
	}
	writeJSON(w, http.StatusOK, groups)
}

// HandleCountries handles GET /api/countries requests.
func (h *CatalogHandler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	writeJSON(w, http.StatusOK, catalog.Countries())
}
