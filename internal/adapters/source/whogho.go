package source

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/okian/vital/internal/domain/catalog"
	"github.com/okian/vital/internal/domain/table"
)

// WHOGHO queries the WHO Global Health Observatory OData API.
// The indicator endpoint returns every country and year; filtering to
// the requested country happens client-side.
type WHOGHO struct {
	baseURL string
	client  *Client
}

// NewWHOGHO creates a WHO GHO adapter.
func NewWHOGHO(opts ...Option) *WHOGHO {
	o := buildOptions(defaultWHOGHOBaseURL, opts)
	return &WHOGHO{baseURL: o.baseURL, client: o.client}
}

const defaultWHOGHOBaseURL = "https://ghoapi.azureedge.net/api"

// Source implements Adapter.
func (a *WHOGHO) Source() catalog.Source { return catalog.SourceWHOGHO }

// ghoResponse mirrors the OData envelope: {"value": [...]}.
type ghoResponse struct {
	Value []ghoObservation `json:"value"`
}

type ghoObservation struct {
	SpatialDim   string   `json:"SpatialDim"`
	TimeDim      flexYear `json:"TimeDim"`
	NumericValue *float64 `json:"NumericValue"`
}

// flexYear tolerates TimeDim arriving as a JSON number or string.
// Unparseable values decode to zero and fall below the year floor.
type flexYear int

func (y *flexYear) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	n, err := strconv.Atoi(s)
	if err != nil {
		*y = 0
		return nil
	}
	*y = flexYear(n)
	return nil
}

// Fetch implements Adapter.
func (a *WHOGHO) Fetch(ctx context.Context, iso3 string, ind catalog.Indicator) (table.Table, error) {
	url := a.baseURL + "/" + ind.Code

	var body ghoResponse
	if err := a.client.GetJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("who gho %q: %w", ind.Name, err)
	}

	var out table.Table
	for _, obs := range body.Value {
		if obs.SpatialDim != iso3 {
			continue
		}
		if int(obs.TimeDim) < minYear {
			continue
		}
		if obs.NumericValue == nil {
			continue
		}
		out = append(out, table.Record{
			Year:    int(obs.TimeDim),
			Country: iso3,
			KPI:     ind.Name,
			Value:   *obs.NumericValue,
			Source:  catalog.SourceWHOGHO,
		})
	}
	return out, nil
}
