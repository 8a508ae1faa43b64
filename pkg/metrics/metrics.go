// Package metrics provides Prometheus instrumentation for nexusflow components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for nexusflow components.
type Registry struct {
	// Pipeline Metrics
	PipelineProcessed   *prometheus.CounterVec
	PipelineErrors      *prometheus.CounterVec
	PipelineStageErrors *prometheus.CounterVec
	PipelineDuration    *prometheus.HistogramVec
	PipelineSuccessRate *prometheus.GaugeVec
	PipelineProcessedAt *prometheus.GaugeVec
	PipelineErrorsAt    *prometheus.GaugeVec

	// Stream Metrics
	StreamBatches  *prometheus.CounterVec
	StreamItems    *prometheus.CounterVec
	StreamErrors   *prometheus.CounterVec
	StreamFiltered *prometheus.CounterVec

	// Chain Metrics
	ChainSteps   *prometheus.CounterVec
	ChainAborted *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by nexusflow components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Pipeline Metrics
		PipelineProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nexusflow",
				Subsystem: "pipeline",
				Name:      "processed_total",
				Help:      "Total number of pipeline process invocations",
			},
			[]string{"pipeline", "format"},
		),

		PipelineErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nexusflow",
				Subsystem: "pipeline",
				Name:      "errors_total",
				Help:      "Total number of failed pipeline process invocations",
			},
			[]string{"pipeline", "format"},
		),

		PipelineStageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nexusflow",
				Subsystem: "pipeline",
				Name:      "stage_errors_total",
				Help:      "Total number of stage failures by stage name",
			},
			[]string{"pipeline", "stage"},
		),

		PipelineDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "nexusflow",
				Subsystem: "pipeline",
				Name:      "process_duration_seconds",
				Help:      "Time spent processing data through pipeline stages",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pipeline", "format"},
		),

		PipelineSuccessRate: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "nexusflow",
				Subsystem: "pipeline",
				Name:      "success_rate",
				Help:      "Last reported pipeline success rate in percent",
			},
			[]string{"pipeline"},
		),

		PipelineProcessedAt: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "nexusflow",
				Subsystem: "pipeline",
				Name:      "processed_count",
				Help:      "Last reported pipeline processed count",
			},
			[]string{"pipeline"},
		),

		PipelineErrorsAt: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "nexusflow",
				Subsystem: "pipeline",
				Name:      "error_count",
				Help:      "Last reported pipeline error count",
			},
			[]string{"pipeline"},
		),

		// Stream Metrics
		StreamBatches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nexusflow",
				Subsystem: "stream",
				Name:      "batches_total",
				Help:      "Total number of batches processed by streams",
			},
			[]string{"stream", "kind"},
		),

		StreamItems: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nexusflow",
				Subsystem: "stream",
				Name:      "items_total",
				Help:      "Total number of batch items processed by streams",
			},
			[]string{"stream", "kind"},
		),

		StreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nexusflow",
				Subsystem: "stream",
				Name:      "errors_total",
				Help:      "Total number of stream batch processing errors",
			},
			[]string{"stream", "kind"},
		),

		StreamFiltered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nexusflow",
				Subsystem: "stream",
				Name:      "filtered_total",
				Help:      "Total number of items retained by high-priority filtering",
			},
			[]string{"stream", "kind"},
		),

		// Chain Metrics
		ChainSteps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nexusflow",
				Subsystem: "chain",
				Name:      "steps_total",
				Help:      "Total number of chain steps executed",
			},
			[]string{"pipeline"},
		),

		ChainAborted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "nexusflow",
				Subsystem: "chain",
				Name:      "aborted_total",
				Help:      "Total number of chains aborted by a failing step",
			},
			[]string{"pipeline"},
		),
	}
}
