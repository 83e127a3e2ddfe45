package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/okian/vital/internal/domain/table"
	"github.com/okian/vital/pkg/metrics"
)

// File permission for exported snapshots.
const exportFilePermission = 0o600

// WriteUnifiedCSV writes the non-pivoted table with the canonical
// column order Year, Country, KPI, Value, Source.
func WriteUnifiedCSV(w io.Writer, t table.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Year", "Country", "KPI", "Value", "Source"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range t {
		row := []string{
			strconv.Itoa(r.Year),
			r.Country,
			r.KPI,
			strconv.FormatFloat(r.Value, 'f', -1, 64),
			string(r.Source),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePivotCSV writes a pivoted table; absent cells stay empty.
func WritePivotCSV(w io.Writer, p *table.Pivot) error {
	cw := csv.NewWriter(w)
	header := append([]string{p.RowLabel}, p.Columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range p.Rows {
		out := make([]string, 0, len(p.Columns)+1)
		out = append(out, row.KPI)
		for _, col := range p.Columns {
			if v, ok := row.Cells[col]; ok {
				out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
			} else {
				out = append(out, "")
			}
		}
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportPaths names the files written by Export.
type ExportPaths struct {
	Unified string
	Summary string
}

// Export writes the unified table and its KPI-by-year pivot to dir.
// Filenames carry a timestamp to avoid overwrite collisions.
func Export(dir, label string, t table.Table) (ExportPaths, error) {
	stamp := time.Now().Format("20060102_150405")
	paths := ExportPaths{
		Unified: filepath.Join(dir, fmt.Sprintf("health_kpis_%s_%s.csv", label, stamp)),
		Summary: filepath.Join(dir, fmt.Sprintf("health_kpis_%s_%s_summary.csv", label, stamp)),
	}

	if err := writeFile(paths.Unified, func(w io.Writer) error {
		return WriteUnifiedCSV(w, t)
	}); err != nil {
		return ExportPaths{}, err
	}
	if err := writeFile(paths.Summary, func(w io.Writer) error {
		return WritePivotCSV(w, table.PivotByYear(t))
	}); err != nil {
		return ExportPaths{}, err
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, exportFilePermission)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("write export file %s: %w", path, err)
	}
	metrics.RecordCSVExport()
	return nil
}
