package service

import (
	"time"

	"github.com/okian/vital/internal/adapters/source"
	"github.com/okian/vital/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithAdapter registers (or replaces) the adapter for its source.
func WithAdapter(a source.Adapter) Option {
	return func(s *Service) {
		if a != nil {
			s.adapters[a.Source()] = a
		}
	}
}

// WithRequestDelay sets the courtesy pause between upstream calls.
func WithRequestDelay(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithMaxRuns caps how many completed runs are retained in memory.
func WithMaxRuns(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRuns = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
