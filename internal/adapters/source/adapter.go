// Package source contains one adapter per upstream statistical API.
// Each adapter performs a single HTTP GET, filters observations to the
// requested country and to years >= 2015, and emits normalized records.
package source

import (
	"context"

	"github.com/okian/vital/internal/domain/catalog"
	"github.com/okian/vital/internal/domain/table"
)

// minYear is the hard lower bound on observation years. Applied at the
// adapter boundary and deliberately not configurable.
const minYear = 2015

// periodStart and periodEnd bound the requested date range where the
// upstream API supports one.
const (
	periodStart = "2015"
	periodEnd   = "2024"
)

// Adapter translates one external API's schema into normalized records.
type Adapter interface {
	// Source identifies which upstream this adapter queries.
	Source() catalog.Source

	// Fetch retrieves observations for one indicator and country.
	// A nil error with an empty table means the upstream had no
	// matching data; errors cover network, status and parse failures.
	Fetch(ctx context.Context, iso3 string, ind catalog.Indicator) (table.Table, error)
}
