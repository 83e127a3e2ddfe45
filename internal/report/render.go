// Package report renders extraction results as text tables and CSV
// exports. It owns no policy beyond formatting: pivoting and conflict
// resolution happen in the table package.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/vital/internal/domain/table"
)

// Column widths for the fixed-width pivot rendering.
const (
	kpiColumnWidth   = 52
	valueColumnWidth = 10
	missingCell      = "-"
)

// Summary captures headline figures for one unified table.
type Summary struct {
	Records int      `json:"records"`
	YearMin int      `json:"year_min"`
	YearMax int      `json:"year_max"`
	KPIs    int      `json:"kpis"`
	Sources []string `json:"sources"`
}

// Summarize computes the headline figures for a table.
func Summarize(t table.Table) Summary {
	s := Summary{Records: len(t), KPIs: len(t.KPIs())}
	for _, src := range t.Sources() {
		s.Sources = append(s.Sources, string(src))
	}
	if years := t.Years(); len(years) > 0 {
		s.YearMin = years[0]
		s.YearMax = years[len(years)-1]
	}
	return s
}

// RenderSummary writes the headline figures as plain text.
func RenderSummary(w io.Writer, t table.Table) error {
	s := Summarize(t)
	_, err := fmt.Fprintf(w,
		"Total records: %d\nYear range: %d - %d\nKPIs covered: %d\nData sources: %s\n",
		s.Records, s.YearMin, s.YearMax, s.KPIs, strings.Join(s.Sources, ", "))
	return err
}

// RenderPivot writes a pivot as a fixed-width text table. Cells without
// a value render as a dash.
func RenderPivot(w io.Writer, p *table.Pivot) error {
	var b strings.Builder

	b.WriteString(pad(p.RowLabel, kpiColumnWidth))
	for _, col := range p.Columns {
		b.WriteString(pad(col, valueColumnWidth))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", kpiColumnWidth+valueColumnWidth*len(p.Columns)))
	b.WriteString("\n")

	for _, row := range p.Rows {
		b.WriteString(pad(truncate(row.KPI, kpiColumnWidth-2), kpiColumnWidth))
		for _, col := range p.Columns {
			cell := missingCell
			if v, ok := row.Cells[col]; ok {
				cell = formatValue(v)
			}
			b.WriteString(pad(cell, valueColumnWidth))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// formatValue keeps integers clean and trims float noise.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
