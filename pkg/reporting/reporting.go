// Package reporting publishes pipeline statistics to Prometheus gauges on a
// cron schedule.
package reporting

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
	"github.com/codenexus/nexusflow/pkg/common/validation"
	"github.com/codenexus/nexusflow/pkg/metrics"
	"github.com/codenexus/nexusflow/pkg/pipeline"
)

// StatsSource provides pipeline statistics keyed by identifier. The pipeline
// manager implements it.
type StatsSource interface {
	AllStats() map[string]pipeline.Stats
}

// Config holds reporter configuration.
type Config struct {
	// Schedule is a cron expression controlling how often stats are
	// published. Supports the "@every <duration>" form.
	Schedule string

	// Metrics configures where the gauges are registered.
	Metrics metrics.Config
}

// DefaultConfig returns a default reporter configuration.
func DefaultConfig() Config {
	return Config{
		Schedule: "@every 30s",
		Metrics:  metrics.DefaultConfig(),
	}
}

// Reporter periodically snapshots a StatsSource into Prometheus gauges.
type Reporter struct {
	source   StatsSource
	registry *metrics.Registry
	cron     *cron.Cron

	mu      sync.Mutex
	started bool
}

// New creates a reporter with the default configuration.
func New(source StatsSource) (*Reporter, error) {
	return NewWithConfig(source, DefaultConfig())
}

// NewWithConfig creates a reporter with the given configuration.
func NewWithConfig(source StatsSource, config Config) (*Reporter, error) {
	if err := validation.NotNil("reporting", "source", source); err != nil {
		return nil, err
	}
	if config.Schedule == "" {
		config.Schedule = DefaultConfig().Schedule
	}

	r := &Reporter{
		source: source,
		cron:   cron.New(),
	}

	if config.Metrics.Enabled {
		r.registry = metrics.DefaultRegistry
		if config.Metrics.Registry != nil {
			r.registry = metrics.NewRegistry(config.Metrics.Registry)
		}
	}

	if _, err := r.cron.AddFunc(config.Schedule, r.ReportOnce); err != nil {
		return nil, errors.Wrapf(nferrors.ErrInvalidConfiguration, "schedule %q: %v", config.Schedule, err)
	}

	return r, nil
}

// Start begins publishing on the configured schedule.
func (r *Reporter) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started {
		return
	}
	r.started = true
	r.cron.Start()
}

// Stop halts scheduled publishing and waits for an in-flight report to
// finish.
func (r *Reporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started {
		return
	}
	r.started = false
	<-r.cron.Stop().Done()
}

// ReportOnce publishes a single snapshot of the source's statistics.
func (r *Reporter) ReportOnce() {
	if r.registry == nil {
		return
	}

	for id, stats := range r.source.AllStats() {
		r.registry.PipelineProcessedAt.WithLabelValues(id).Set(float64(stats.Processed))
		r.registry.PipelineErrorsAt.WithLabelValues(id).Set(float64(stats.Errors))
		r.registry.PipelineSuccessRate.WithLabelValues(id).Set(stats.SuccessRate)
	}
}
