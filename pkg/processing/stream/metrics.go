package stream

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codenexus/nexusflow/pkg/metrics"
)

// MetricsStream wraps a Stream with Prometheus metrics collection.
type MetricsStream struct {
	stream   Stream
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics wraps a stream with metrics enabled.
func NewWithMetrics(s Stream) Stream {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(s, config)
}

// NewWithConfigAndMetrics wraps a stream with custom metrics configuration.
func NewWithConfigAndMetrics(s Stream, metricsConfig metrics.Config) Stream {
	if !metricsConfig.Enabled {
		return s
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsStream{
		stream:   s,
		registry: registry,
		enabled:  true,
	}
}

// ID returns the stream identifier.
func (ms *MetricsStream) ID() string {
	return ms.stream.ID()
}

// Kind returns the stream variant name.
func (ms *MetricsStream) Kind() string {
	return ms.stream.Kind()
}

// ProcessBatch consumes a batch, recording batch, item, and error counters.
func (ms *MetricsStream) ProcessBatch(batch []string) (string, error) {
	id := ms.stream.ID()
	kind := ms.stream.Kind()

	if ms.enabled {
		ms.registry.StreamBatches.WithLabelValues(id, kind).Inc()
		ms.registry.StreamItems.WithLabelValues(id, kind).Add(float64(len(batch)))
	}

	summary, err := ms.stream.ProcessBatch(batch)

	if ms.enabled && err != nil {
		ms.registry.StreamErrors.WithLabelValues(id, kind).Inc()
	}

	return summary, err
}

// Filter returns the subset of batch matching the criteria, recording how
// many items high-priority filtering retained.
func (ms *MetricsStream) Filter(batch []string, criteria Criteria) []string {
	out := ms.stream.Filter(batch, criteria)

	if ms.enabled && criteria == HighPriority {
		ms.registry.StreamFiltered.WithLabelValues(ms.stream.ID(), ms.stream.Kind()).Add(float64(len(out)))
	}

	return out
}

// Stats returns stream processing statistics.
func (ms *MetricsStream) Stats() Stats {
	return ms.stream.Stats()
}

// EnableMetrics enables metrics collection.
func (ms *MetricsStream) EnableMetrics(config metrics.Config) error {
	ms.enabled = config.Enabled

	if config.Registry != nil {
		ms.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ms *MetricsStream) DisableMetrics() {
	ms.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ms *MetricsStream) MetricsEnabled() bool {
	return ms.enabled
}
