// Package metrics provides Prometheus metrics for the vital extraction service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fetch outcome label values recorded by the adapters.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeFailure = "failure"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Extraction metrics
	fetchRequests    *prometheus.CounterVec
	fetchDuration    *prometheus.HistogramVec
	recordsExtracted *prometheus.CounterVec
	extractionRuns   prometheus.Counter
	csvExports       prometheus.Counter

	// HTTP surface metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers all metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "vital",
		subsystem:        "extract",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.fetchRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_requests_total",
		Help:      "Upstream indicator fetches by source and outcome",
	}, []string{"source", "outcome"})

	m.fetchDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_duration_ms",
		Help:      "Upstream fetch duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"source"})

	m.recordsExtracted = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_extracted_total",
		Help:      "Normalized observation records extracted by source",
	}, []string{"source"})

	m.extractionRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Completed extraction runs",
	})

	m.csvExports = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "csv_exports_total",
		Help:      "CSV files written or served",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// GetRegistry returns the registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordFetch counts one upstream fetch attempt for a source.
func RecordFetch(source, outcome string) {
	globalManager.fetchRequests.WithLabelValues(source, outcome).Inc()
}

// ObserveFetchDuration records how long an upstream fetch took.
func ObserveFetchDuration(source string, ms float64) {
	globalManager.fetchDuration.WithLabelValues(source).Observe(ms)
}

// AddRecordsExtracted counts normalized records produced by a source.
func AddRecordsExtracted(source string, n int) {
	globalManager.recordsExtracted.WithLabelValues(source).Add(float64(n))
}

// RecordExtractionRun counts one completed extraction run.
func RecordExtractionRun() {
	globalManager.extractionRuns.Inc()
}

// RecordCSVExport counts one exported CSV artifact.
func RecordCSVExport() {
	globalManager.csvExports.Inc()
}

// RecordHTTPRequest counts one handled HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records the duration of a handled HTTP request.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}
