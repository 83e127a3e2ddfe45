package cli

import (
	"io"
	"time"
)

// Config holds configuration for one terminal extraction session.
type Config struct {
	Countries  string        // comma-separated names or ISO3 codes; prompted when empty
	KPIs       string        // comma-separated menu numbers; prompted when empty
	Timeout    time.Duration // HTTP request timeout
	Delay      time.Duration // courtesy pause between upstream calls
	OutputDir  string        // where CSV snapshots are written
	Verbose    bool          // enable debug logging
	NoExport   bool          // skip writing CSV snapshots
	LogFile    string        // log file for session output

	// Upstream base URLs, overridable for testing.
	WHOGHOBaseURL    string
	WorldBankBaseURL string
	OECDBaseURL      string

	// Prompt plumbing, swappable in tests.
	In  io.Reader
	Out io.Writer
}
