package pipeline

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/codenexus/nexusflow/pkg/metrics"
)

// MetricsPipeline wraps a Pipeline with Prometheus metrics collection.
type MetricsPipeline struct {
	pipeline Pipeline
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new pipeline with metrics enabled.
func NewWithMetrics(id string, format Format) Pipeline {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(id, format, config)
}

// NewWithConfigAndMetrics creates a new pipeline with custom metrics configuration.
func NewWithConfigAndMetrics(id string, format Format, metricsConfig metrics.Config) Pipeline {
	basePipeline := New(id, format)

	if !metricsConfig.Enabled {
		return basePipeline
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsPipeline{
		pipeline: basePipeline,
		registry: registry,
		enabled:  true,
	}
}

// ID returns the pipeline identifier.
func (mp *MetricsPipeline) ID() string {
	return mp.pipeline.ID()
}

// Format returns the pipeline's format adapter.
func (mp *MetricsPipeline) Format() Format {
	return mp.pipeline.Format()
}

// AddStage appends a stage to the pipeline.
func (mp *MetricsPipeline) AddStage(stage Stage) Pipeline {
	mp.pipeline.AddStage(stage)
	return mp
}

// AddStageFunc appends a stage function to the pipeline.
func (mp *MetricsPipeline) AddStageFunc(name string, fn func(ctx context.Context, input interface{}) (interface{}, error)) Pipeline {
	mp.pipeline.AddStageFunc(name, fn)
	return mp
}

// Stages returns all stages in the pipeline.
func (mp *MetricsPipeline) Stages() []Stage {
	return mp.pipeline.Stages()
}

// Process runs the input through the stage sequence, recording counters and
// durations.
func (mp *MetricsPipeline) Process(ctx context.Context, input interface{}) (*Result, error) {
	id := mp.pipeline.ID()
	format := string(mp.pipeline.Format())

	if mp.enabled {
		mp.registry.PipelineProcessed.WithLabelValues(id, format).Inc()
	}

	result, err := mp.pipeline.Process(ctx, input)

	if mp.enabled {
		mp.registry.PipelineDuration.WithLabelValues(id, format).Observe(result.Duration.Seconds())

		if err != nil {
			mp.registry.PipelineErrors.WithLabelValues(id, format).Inc()
			for _, sr := range result.StageResults {
				if sr.Err != nil {
					mp.registry.PipelineStageErrors.WithLabelValues(id, sr.StageName).Inc()
				}
			}
		}
	}

	return result, err
}

// Stats returns pipeline processing statistics.
func (mp *MetricsPipeline) Stats() Stats {
	return mp.pipeline.Stats()
}

// EnableMetrics enables metrics collection.
func (mp *MetricsPipeline) EnableMetrics(config metrics.Config) error {
	mp.enabled = config.Enabled

	if config.Registry != nil {
		mp.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mp *MetricsPipeline) DisableMetrics() {
	mp.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mp *MetricsPipeline) MetricsEnabled() bool {
	return mp.enabled
}
