// Package telemetry provides OpenTelemetry instrumentation for the
// triage service. It exports Prometheus metrics and tracing helpers.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "triage"

// Metrics holds all triage Prometheus metrics.
type Metrics struct {
	// Pipeline metrics
	ComplaintsProcessed *prometheus.CounterVec
	ComplaintsFailed    *prometheus.CounterVec
	PipelineDuration    prometheus.Histogram
	StageDuration       *prometheus.HistogramVec

	// Verdict distribution
	CategoryTotal   *prometheus.CounterVec
	PriorityTotal   *prometheus.CounterVec
	ValidationTotal *prometheus.CounterVec
	KeywordLocks    prometheus.Counter

	// Provider metrics
	ProviderFailures *prometheus.CounterVec

	// Backpressure metrics
	QueueDepth    prometheus.Gauge
	ActiveWorkers prometheus.Gauge
	BatchSize     prometheus.Histogram

	// Freshness
	PollerLag prometheus.Histogram
}

// Provider wraps telemetry providers.
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics.
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics
// endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initPipelineMetrics(m)
	initVerdictMetrics(m)
	initBackpressureMetrics(m)
	return m
}

func initPipelineMetrics(m *Metrics) {
	m.ComplaintsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_complaints_processed_total",
		Help: "Total complaints fully triaged",
	}, []string{"source"})

	m.ComplaintsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_complaints_failed_total",
		Help: "Total complaints that failed triage",
	}, []string{"source", "error_code"})

	m.PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "triage_pipeline_duration_seconds",
		Help:    "End-to-end time to triage a single complaint",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
	})

	m.StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "triage_stage_duration_seconds",
		Help:    "Time spent per pipeline stage",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
	}, []string{"stage"})

	m.ProviderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_provider_failures_total",
		Help: "External provider failures by provider name",
	}, []string{"provider"})
}

func initVerdictMetrics(m *Metrics) {
	m.CategoryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_category_total",
		Help: "Complaints by final category",
	}, []string{"category"})

	m.PriorityTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_priority_total",
		Help: "Complaints by final priority",
	}, []string{"priority"})

	m.ValidationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "triage_validation_total",
		Help: "Complaints by policy validation outcome",
	}, []string{"outcome"})

	m.KeywordLocks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "triage_keyword_locks_total",
		Help: "Complaints whose category was locked by keyword evidence",
	})
}

func initBackpressureMetrics(m *Metrics) {
	m.QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "triage_queue_depth",
		Help: "Current pending complaints in work queue",
	})

	m.ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "triage_active_workers",
		Help: "Currently active worker goroutines",
	})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "triage_batch_size",
		Help:    "Number of complaints per processing batch",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200},
	})

	m.PollerLag = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "triage_poller_lag_seconds",
		Help:    "Time between complaint submission and triage start",
		Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800, 3600},
	})
}

// RecordTriage records metrics for one completed pipeline run.
func (p *Provider) RecordTriage(_ context.Context, source string, success bool, duration time.Duration) {
	if success {
		p.Metrics.ComplaintsProcessed.WithLabelValues(source).Inc()
	}
	p.Metrics.PipelineDuration.Observe(duration.Seconds())
}

// RecordTriageFailure records a failed pipeline run with an error code.
func (p *Provider) RecordTriageFailure(_ context.Context, source, errorCode string) {
	p.Metrics.ComplaintsFailed.WithLabelValues(source, errorCode).Inc()
}

// RecordStage records the duration of one pipeline stage.
func (p *Provider) RecordStage(_ context.Context, stage string, duration time.Duration) {
	p.Metrics.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordVerdict records the final category, priority, and validation
// outcome of one complaint.
func (p *Provider) RecordVerdict(_ context.Context, category, priority, validation string, locked bool) {
	if category == "" {
		category = "unknown"
	}
	p.Metrics.CategoryTotal.WithLabelValues(category).Inc()
	p.Metrics.PriorityTotal.WithLabelValues(priority).Inc()
	p.Metrics.ValidationTotal.WithLabelValues(validation).Inc()
	if locked {
		p.Metrics.KeywordLocks.Inc()
	}
}

// RecordProviderFailure records an external provider failure.
func (p *Provider) RecordProviderFailure(_ context.Context, provider string) {
	p.Metrics.ProviderFailures.WithLabelValues(provider).Inc()
}

// RecordPollerLag records the freshness lag for one picked-up
// complaint.
func (p *Provider) RecordPollerLag(_ context.Context, submittedAt time.Time) {
	p.Metrics.PollerLag.Observe(time.Since(submittedAt).Seconds())
}

// SetQueueDepth sets the current queue depth.
func (p *Provider) SetQueueDepth(depth int) {
	p.Metrics.QueueDepth.Set(float64(depth))
}

// SetActiveWorkers sets the current active worker count.
func (p *Provider) SetActiveWorkers(count int) {
	p.Metrics.ActiveWorkers.Set(float64(count))
}

// RecordBatchSize records the size of a processed batch.
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
