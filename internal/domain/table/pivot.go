package table

import (
	"sort"
	"strconv"
)

// Pivot is a row-oriented table reshaped into a KPI-by-column matrix.
// Cells hold the first value observed for a (KPI, column) pair; later
// records sharing the same cell are ignored.
type Pivot struct {
	RowLabel string     `json:"rowLabel"`
	Columns  []string   `json:"columns"`
	Rows     []PivotRow `json:"rows"`
}

// PivotRow is one pivot row keyed by KPI name.
type PivotRow struct {
	KPI   string             `json:"kpi"`
	Cells map[string]float64 `json:"cells"`
}

// Cell returns the value at (kpi, column) if present.
func (p *Pivot) Cell(kpi, column string) (float64, bool) {
	for _, row := range p.Rows {
		if row.KPI == kpi {
			v, ok := row.Cells[column]
			return v, ok
		}
	}
	return 0, false
}

// PivotByYear reshapes the table into KPI rows against Year columns.
func PivotByYear(t Table) *Pivot {
	return pivot(t, func(r Record) string {
		return strconv.Itoa(r.Year)
	})
}

// PivotByCountryYear reshapes the table into KPI rows against columns
// crossing Country with Year, e.g. "DEU 2019".
func PivotByCountryYear(t Table) *Pivot {
	return pivot(t, func(r Record) string {
		return r.Country + " " + strconv.Itoa(r.Year)
	})
}

func pivot(t Table, column func(Record) string) *Pivot {
	p := &Pivot{RowLabel: "KPI"}

	byKPI := map[string]int{}
	seenCol := map[string]bool{}
	for _, r := range t {
		col := column(r)
		if !seenCol[col] {
			seenCol[col] = true
			p.Columns = append(p.Columns, col)
		}

		idx, ok := byKPI[r.KPI]
		if !ok {
			idx = len(p.Rows)
			byKPI[r.KPI] = idx
			p.Rows = append(p.Rows, PivotRow{KPI: r.KPI, Cells: map[string]float64{}})
		}
		// First observed value wins on cell conflicts.
		if _, exists := p.Rows[idx].Cells[col]; !exists {
			p.Rows[idx].Cells[col] = r.Value
		}
	}

	sort.Strings(p.Columns)
	return p
}
