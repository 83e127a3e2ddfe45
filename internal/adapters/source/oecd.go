package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/vital/internal/domain/catalog"
	"github.com/okian/vital/internal/domain/table"
)

const defaultOECDBaseURL = "https://sdmx.oecd.org/public/rest/data"

// Column names in the labelled-CSV response format.
const (
	oecdTimeColumn  = "TIME_PERIOD"
	oecdValueColumn = "OBS_VALUE"
)

// OECD queries the OECD SDMX API in its labelled-CSV response format.
type OECD struct {
	baseURL string
	client  *Client
}

// NewOECD creates an OECD adapter.
func NewOECD(opts ...Option) *OECD {
	o := buildOptions(defaultOECDBaseURL, opts)
	return &OECD{baseURL: o.baseURL, client: o.client}
}

// Source implements Adapter.
func (a *OECD) Source() catalog.Source { return catalog.SourceOECD }

// datasetFor picks the SDMX dataset for an indicator. Catalog entries
// carry an explicit dataset; the name heuristic only covers ad-hoc
// indicators created outside the catalog.
func datasetFor(ind catalog.Indicator) string {
	if ind.Dataset != "" {
		return ind.Dataset
	}
	if strings.Contains(strings.ToLower(ind.Name), "insurance") {
		return catalog.OECDDatasetHealthProtection
	}
	return catalog.OECDDatasetHealthStatistics
}

// Fetch implements Adapter.
func (a *OECD) Fetch(ctx context.Context, iso3 string, ind catalog.Indicator) (table.Table, error) {
	params := url.Values{}
	params.Set("startPeriod", periodStart)
	params.Set("endPeriod", periodEnd)
	params.Set("dimensionAtObservation", "AllDimensions")
	params.Set("format", "csvfilewithlabels")
	u := fmt.Sprintf("%s/%s/%s.%s.._T?%s", a.baseURL, datasetFor(ind), iso3, ind.Code, params.Encode())

	body, err := a.client.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("oecd %q: %w", ind.Name, err)
	}

	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1 // labelled exports vary in width

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("oecd %q: %w: %v", ind.Name, ErrDecode, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	timeIdx, valueIdx := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case oecdTimeColumn:
			timeIdx = i
		case oecdValueColumn:
			valueIdx = i
		}
	}
	if timeIdx < 0 || valueIdx < 0 {
		return nil, fmt.Errorf("oecd %q: %w", ind.Name, ErrMissingColumn)
	}

	var out table.Table
	for _, row := range rows[1:] {
		if timeIdx >= len(row) || valueIdx >= len(row) {
			continue
		}
		rawValue := strings.TrimSpace(row[valueIdx])
		if rawValue == "" {
			continue
		}
		value, err := strconv.ParseFloat(rawValue, 64)
		if err != nil {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[timeIdx]))
		if err != nil || year < minYear {
			continue
		}
		out = append(out, table.Record{
			Year:    year,
			Country: iso3,
			KPI:     ind.Name,
			Value:   value,
			Source:  catalog.SourceOECD,
		})
	}
	return out, nil
}
