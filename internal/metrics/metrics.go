package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"onebot-ads/internal/core/domain"
	"onebot-ads/internal/core/port"
)

const namespace = "onebot_ads"

// Metrics holds the application's collectors on a dedicated registry so
// tests can build as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	llmRequests        *prometheus.CounterVec
	llmDuration        prometheus.Histogram
	extractionFailures *prometheus.CounterVec
	workflowRuns       *prometheus.CounterVec
	artifactsWritten   *prometheus.CounterVec
}

// New registers every collector on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "Text-completion requests by outcome.",
		}, []string{"status"}),
		llmDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "Latency of text-completion requests.",
			Buckets:   []float64{.25, .5, 1, 2, 4, 8, 16, 32},
		}),
		extractionFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extraction_failures_total",
			Help:      "Failed brief extractions by reason.",
		}, []string{"reason"}),
		workflowRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_runs_total",
			Help:      "Workflow runs by outcome.",
		}, []string{"status"}),
		artifactsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_written_total",
			Help:      "Persisted artifacts by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.llmRequests,
		m.llmDuration,
		m.extractionFailures,
		m.workflowRuns,
		m.artifactsWritten,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ExtractionFailed counts a failed extraction. Errors that are not
// extraction errors are counted as service errors.
func (m *Metrics) ExtractionFailed(err error) {
	reason := domain.ReasonServiceError
	var extErr *domain.ExtractionError
	if errors.As(err, &extErr) {
		reason = extErr.Reason
	}
	m.extractionFailures.WithLabelValues(string(reason)).Inc()
}

// WorkflowFinished counts a workflow run.
func (m *Metrics) WorkflowFinished(err error) {
	m.workflowRuns.WithLabelValues(status(err)).Inc()
}

// ArtifactWritten counts a persisted artifact.
func (m *Metrics) ArtifactWritten(kind domain.ArtifactKind) {
	m.artifactsWritten.WithLabelValues(string(kind)).Inc()
}

// InstrumentGenerator wraps gen so every completion is counted and timed.
func (m *Metrics) InstrumentGenerator(gen port.TextGenerator) port.TextGenerator {
	return &instrumentedGenerator{next: gen, m: m}
}

type instrumentedGenerator struct {
	next port.TextGenerator
	m    *Metrics
}

func (g *instrumentedGenerator) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	start := time.Now()
	out, err := g.next.Generate(ctx, prompt, maxTokens)
	g.m.llmDuration.Observe(time.Since(start).Seconds())
	g.m.llmRequests.WithLabelValues(status(err)).Inc()
	return out, err
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
