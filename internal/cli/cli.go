package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/vital/pkg/logger"
)

// File permission for session log files.
const logFilePermission = 0o600

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string, verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		_ = logger.SetLevelString("debug")
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "extract_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return nil
}

// ShowHelp prints usage information for the extraction tool.
func ShowHelp() {
	os.Stdout.WriteString(`Vital Health KPI Extraction Tool
================================

Retrieves health indicators from WHO GHO, World Bank and OECD,
renders pivoted tables and writes timestamped CSV snapshots.

Usage:
  go run cmd/extract/main.go [options]

Options:
  -countries string
        Comma-separated country names or ISO3 codes (prompted if empty)
  -kpis string
        Comma-separated KPI menu numbers (prompted if empty)
  -timeout duration
        HTTP request timeout (default 30s)
  -delay duration
        Pause between upstream calls (default 500ms)
  -output string
        Directory for CSV snapshots (default ".")
  -no-export
        Skip writing CSV snapshots
  -log string
        Log file for session output (default: extract_log_TIMESTAMP.log)
  -verbose
        Enable debug logging
  -help
        Show this help message

Examples:
  # Fully interactive session
  go run cmd/extract/main.go

  # Non-interactive: Germany, first three KPIs
  go run cmd/extract/main.go -countries germany -kpis 1,2,3

  # Compare two countries without writing files
  go run cmd/extract/main.go -countries "france, germany" -kpis 11,12 -no-export
`)
}
