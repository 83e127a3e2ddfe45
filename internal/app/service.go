// Package service provides the extraction service that drives the
// source adapters and retains recent runs for the HTTP surface.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/vital/internal/adapters/source"
	"github.com/okian/vital/internal/domain/catalog"
	"github.com/okian/vital/internal/domain/table"
	"github.com/okian/vital/pkg/logger"
	"github.com/okian/vital/pkg/metrics"
)

// Selection names what one extraction run should retrieve.
type Selection struct {
	Countries  []string            `json:"countries"`
	Indicators []catalog.Indicator `json:"indicators"`
}

// Run is the result of one extraction. The table is sorted by
// (KPI, Year) for single-country runs and (Country, KPI, Year)
// otherwise. Warnings carry per-indicator fetch problems; they never
// fail the run.
type Run struct {
	ID          string      `json:"id"`
	StartedAt   time.Time   `json:"startedAt"`
	CompletedAt time.Time   `json:"completedAt"`
	Countries   []string    `json:"countries"`
	Table       table.Table `json:"records"`
	Warnings    []string    `json:"warnings"`
}

// Service invokes the matching adapter for every selected indicator,
// sequentially, with a fixed courtesy delay between upstream calls.
type Service struct {
	mu sync.RWMutex

	adapters map[catalog.Source]source.Adapter
	delay    time.Duration
	maxRuns  int
	logger   logger.Logger

	// Recent runs, most recent last, capped at maxRuns.
	runs []*Run
}

// New constructs a Service with the default adapters.
func New(opts ...Option) *Service {
	s := &Service{
		adapters: map[catalog.Source]source.Adapter{
			catalog.SourceWHOGHO:    source.NewWHOGHO(),
			catalog.SourceWorldBank: source.NewWorldBank(),
			catalog.SourceOECD:      source.NewOECD(),
		},
		delay:   500 * time.Millisecond,
		maxRuns: 20,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Extract runs the full pipeline for a selection. Adapter failures and
// empty results become warnings; the only error paths are an empty
// selection and context cancellation.
func (s *Service) Extract(ctx context.Context, sel Selection) (*Run, error) {
	if len(sel.Indicators) == 0 {
		return nil, ErrEmptySelection
	}
	if len(sel.Countries) == 0 {
		return nil, ErrNoCountry
	}

	countries := make([]string, 0, len(sel.Countries))
	for _, c := range sel.Countries {
		countries = append(countries, catalog.ResolveCountry(c))
	}

	run := &Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Countries: countries,
	}

	s.logger.Info(ctx, "starting extraction",
		logger.String("run", run.ID),
		logger.Int("countries", len(countries)),
		logger.Int("indicators", len(sel.Indicators)))

	var parts []table.Table
	first := true
	for _, country := range countries {
		for _, ind := range sel.Indicators {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if !first {
				if err := sleepCtx(ctx, s.delay); err != nil {
					return nil, err
				}
			}
			first = false

			tb, err := s.fetchOne(ctx, country, ind)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil, err
				}
				run.Warnings = append(run.Warnings,
					fmt.Sprintf("data unavailable for %q (%s): %v", ind.Name, country, err))
				continue
			}
			if tb.Empty() {
				run.Warnings = append(run.Warnings,
					fmt.Sprintf("data unavailable for %q (%s)", ind.Name, country))
				continue
			}
			parts = append(parts, tb)
		}
	}

	run.Table = table.Concat(parts...)
	if len(countries) > 1 {
		run.Table.SortByCountryKPIYear()
	} else {
		run.Table.SortByKPIYear()
	}
	run.CompletedAt = time.Now().UTC()

	metrics.RecordExtractionRun()
	s.logger.Info(ctx, "extraction finished",
		logger.String("run", run.ID),
		logger.Int("records", len(run.Table)),
		logger.Int("warnings", len(run.Warnings)))

	s.remember(run)
	return run, nil
}

// fetchOne calls a single adapter and records fetch metrics.
func (s *Service) fetchOne(ctx context.Context, country string, ind catalog.Indicator) (table.Table, error) {
	adapter, ok := s.adapters[ind.Source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, ind.Source)
	}

	start := time.Now()
	tb, err := adapter.Fetch(ctx, country, ind)
	metrics.ObserveFetchDuration(string(ind.Source), float64(time.Since(start).Milliseconds()))

	switch {
	case err != nil:
		metrics.RecordFetch(string(ind.Source), metrics.OutcomeFailure)
		s.logger.Warn(ctx, "fetch failed",
			logger.String("indicator", ind.Name),
			logger.String("country", country),
			logger.Error(err))
		return nil, err
	case tb.Empty():
		metrics.RecordFetch(string(ind.Source), metrics.OutcomeEmpty)
		return nil, nil
	default:
		metrics.RecordFetch(string(ind.Source), metrics.OutcomeSuccess)
		metrics.AddRecordsExtracted(string(ind.Source), len(tb))
		return tb, nil
	}
}

// Run returns a retained run by id.
func (s *Service) Run(id string) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.runs {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Runs returns the retained runs, most recent first.
func (s *Service) Runs() []*Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Run, 0, len(s.runs))
	for i := len(s.runs) - 1; i >= 0; i-- {
		out = append(out, s.runs[i])
	}
	return out
}

func (s *Service) remember(run *Run) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append(s.runs, run)
	if s.maxRuns > 0 && len(s.runs) > s.maxRuns {
		s.runs = s.runs[len(s.runs)-s.maxRuns:]
	}
}

// sleepCtx pauses between upstream calls but aborts on cancellation.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
