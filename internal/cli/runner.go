package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/okian/vital/internal/adapters/source"
	service "github.com/okian/vital/internal/app"
	"github.com/okian/vital/internal/domain/table"
	"github.com/okian/vital/internal/report"
	"github.com/okian/vital/pkg/logger"
)

// Run executes one terminal extraction session: select country and
// KPIs, extract, render, export.
func Run(ctx context.Context, cfg *Config) error {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "HEALTH KPI DATA EXTRACTION")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	// Step 1: country selection.
	countryInput := cfg.Countries
	if countryInput == "" {
		countryInput = promptLine(scanner, out, "Enter country name(s), comma-separated: ")
	}
	countries := splitCountries(countryInput)
	if len(countries) == 0 {
		fmt.Fprintln(out, "Select at least one country.")
		return nil
	}
	fmt.Fprintf(out, "Selected countries: %s\n", strings.Join(countries, ", "))

	// Step 2: indicator selection.
	menu := NewMenu()
	kpiInput := cfg.KPIs
	if kpiInput == "" {
		menu.Render(out)
		kpiInput = promptLine(scanner, out,
			fmt.Sprintf("\nSelect KPIs (1-%d), e.g. '1,2,3': ", menu.Size()))
	}
	indicators := menu.Pick(kpiInput)
	if len(indicators) == 0 {
		fmt.Fprintln(out, "Select at least one KPI.")
		return nil
	}
	fmt.Fprintf(out, "Selected %d KPIs\n", len(indicators))

	// Step 3: extraction.
	svc := newService(cfg)
	run, err := svc.Extract(ctx, service.Selection{
		Countries:  countries,
		Indicators: indicators,
	})
	switch {
	case errors.Is(err, service.ErrEmptySelection):
		fmt.Fprintln(out, "Select at least one KPI.")
		return nil
	case err != nil:
		return err
	}

	for _, warning := range run.Warnings {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}

	if run.Table.Empty() {
		fmt.Fprintln(out, "No data found for the selected criteria.")
		return nil
	}

	// Step 4: render.
	fmt.Fprintf(out, "\nHEALTH KPI DATA FOR %s\n", strings.Join(countries, ", "))
	fmt.Fprintln(out, strings.Repeat("=", 80))
	if err := report.RenderSummary(out, run.Table); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nOVERVIEW:")
	overview := pivotFor(run)
	if err := report.RenderPivot(out, overview); err != nil {
		return err
	}

	for _, src := range run.Table.Sources() {
		section := run.Table.FilterSource(src)
		fmt.Fprintf(out, "\n%s (%d records):\n", src, len(section))
		if err := report.RenderPivot(out, table.PivotByYear(section)); err != nil {
			return err
		}
	}

	// Step 5: export.
	if cfg.NoExport {
		return nil
	}
	paths, err := report.Export(cfg.OutputDir, strings.Join(countries, "-"), run.Table)
	if err != nil {
		logger.Get().Warn(ctx, "csv export failed", logger.Error(err))
		return nil
	}
	fmt.Fprintf(out, "\nData saved to: %s\n", paths.Unified)
	fmt.Fprintf(out, "Summary saved to: %s\n", paths.Summary)
	return nil
}

// pivotFor picks the pivot axes: KPI x Year for one country, KPI x
// (Country, Year) for several.
func pivotFor(run *service.Run) *table.Pivot {
	if len(run.Countries) > 1 {
		return table.PivotByCountryYear(run.Table)
	}
	return table.PivotByYear(run.Table)
}

// newService wires adapters from the session config.
func newService(cfg *Config) *service.Service {
	clientOpts := func(baseURL string) []source.Option {
		opts := []source.Option{source.WithTimeout(cfg.Timeout)}
		if baseURL != "" {
			opts = append(opts, source.WithBaseURL(baseURL))
		}
		return opts
	}
	return service.New(
		service.WithAdapter(source.NewWHOGHO(clientOpts(cfg.WHOGHOBaseURL)...)),
		service.WithAdapter(source.NewWorldBank(clientOpts(cfg.WorldBankBaseURL)...)),
		service.WithAdapter(source.NewOECD(clientOpts(cfg.OECDBaseURL)...)),
		service.WithRequestDelay(cfg.Delay),
	)
}
