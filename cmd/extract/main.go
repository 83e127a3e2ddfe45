package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/vital/internal/cli"
)

// Default configuration constants.
const (
	defaultTimeout = 30 * time.Second
	defaultDelay   = 500 * time.Millisecond
)

func main() {
	var (
		countries = flag.String("countries", "", "Comma-separated country names or ISO3 codes (prompted if empty)")
		kpis      = flag.String("kpis", "", "Comma-separated KPI menu numbers (prompted if empty)")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		delay     = flag.Duration("delay", defaultDelay, "Pause between upstream calls")
		output    = flag.String("output", ".", "Directory for CSV snapshots")
		noExport  = flag.Bool("no-export", false, "Skip writing CSV snapshots")
		logFile   = flag.String("log", "", "Log file for session output (default: extract_log_TIMESTAMP.log)")
		verbose   = flag.Bool("verbose", false, "Enable verbose logging")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		cli.ShowHelp()
		return
	}

	// Setup logging
	if err := cli.SetupLogging(*logFile, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Cancel the session on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create session configuration
	config := &cli.Config{
		Countries: *countries,
		KPIs:      *kpis,
		Timeout:   *timeout,
		Delay:     *delay,
		OutputDir: *output,
		NoExport:  *noExport,
		LogFile:   *logFile,
		Verbose:   *verbose,
	}

	// Run the extraction session
	if err := cli.Run(ctx, config); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Stdout.WriteString("\nExtraction cancelled.\n")
			return
		}
		os.Stderr.WriteString("Extraction failed: " + err.Error() + "\n")
		return
	}
}
