package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/okian/vital/internal/domain/catalog"
	"github.com/okian/vital/internal/domain/table"
)

// pageSize is the fixed World Bank page size. There is no follow-up
// pagination: indicators with more than pageSize observations in the
// requested range are truncated, which is an accepted limitation.
const pageSize = 100

const defaultWorldBankBaseURL = "https://api.worldbank.org/v2"

// WorldBank queries the World Bank indicators API.
type WorldBank struct {
	baseURL string
	client  *Client
}

// NewWorldBank creates a World Bank adapter.
func NewWorldBank(opts ...Option) *WorldBank {
	o := buildOptions(defaultWorldBankBaseURL, opts)
	return &WorldBank{baseURL: o.baseURL, client: o.client}
}

// Source implements Adapter.
func (a *WorldBank) Source() catalog.Source { return catalog.SourceWorldBank }

// wbObservation mirrors one element of the observation array. The API
// wraps results as [metadata, observations].
type wbObservation struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Fetch implements Adapter.
func (a *WorldBank) Fetch(ctx context.Context, iso3 string, ind catalog.Indicator) (table.Table, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("date", periodStart+":"+periodEnd)
	params.Set("per_page", strconv.Itoa(pageSize))
	u := fmt.Sprintf("%s/country/%s/indicator/%s?%s", a.baseURL, iso3, ind.Code, params.Encode())

	var envelope []json.RawMessage
	if err := a.client.GetJSON(ctx, u, &envelope); err != nil {
		return nil, fmt.Errorf("world bank %q: %w", ind.Name, err)
	}

	// A single-element body carries only metadata (typically an error
	// message for unknown indicators); treat it as no data.
	if len(envelope) < 2 {
		return nil, nil
	}

	var observations []wbObservation
	if err := json.Unmarshal(envelope[1], &observations); err != nil {
		return nil, fmt.Errorf("world bank %q: %w: %v", ind.Name, ErrDecode, err)
	}

	var out table.Table
	for _, obs := range observations {
		if obs.Value == nil {
			continue
		}
		year, err := strconv.Atoi(obs.Date)
		if err != nil || year < minYear {
			continue
		}
		out = append(out, table.Record{
			Year:    year,
			Country: iso3,
			KPI:     ind.Name,
			Value:   *obs.Value,
			Source:  catalog.SourceWorldBank,
		})
	}
	return out, nil
}
