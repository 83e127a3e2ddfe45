package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/vital/internal/adapters/http/api"
	"github.com/okian/vital/internal/adapters/http/swagger"
	"github.com/okian/vital/internal/adapters/source"
	service "github.com/okian/vital/internal/app"
	"github.com/okian/vital/internal/config"
	"github.com/okian/vital/pkg/logger"
)

// HTTP server timeout constants. Extractions query three public APIs
// sequentially with a courtesy delay, so the write timeout has to
// cover a full multi-indicator run.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 5 * time.Minute
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			logger.Get().Error(context.Background(), "logger sync failed", logger.Error(err))
		}
	}()

	loggerInstance := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := newService(cfg, loggerInstance)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register API docs under /api-docs
	swagger.Register(ctx, mux)

	// Register business API routes with the service dependency.
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// newService builds the extraction service with one adapter per
// upstream source, all sharing the configured timeout.
func newService(cfg *config.Config, log logger.Logger) *service.Service {
	timeout := time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	return service.New(
		service.WithAdapter(source.NewWHOGHO(source.WithTimeout(timeout), source.WithBaseURL(cfg.WHOGHOBaseURL))),
		service.WithAdapter(source.NewWorldBank(source.WithTimeout(timeout), source.WithBaseURL(cfg.WorldBankBaseURL))),
		service.WithAdapter(source.NewOECD(source.WithTimeout(timeout), source.WithBaseURL(cfg.OECDBaseURL))),
		service.WithRequestDelay(time.Duration(cfg.RequestDelayMS)*time.Millisecond),
		service.WithMaxRuns(cfg.MaxRunsRetained),
		service.WithLogger(log),
	)
}
