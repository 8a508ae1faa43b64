package manager

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
	"github.com/codenexus/nexusflow/pkg/common/validation"
	"github.com/codenexus/nexusflow/pkg/metrics"
	"github.com/codenexus/nexusflow/pkg/pipeline"
)

// Manager orchestrates multiple pipelines.
type Manager struct {
	mu        sync.RWMutex
	pipelines []pipeline.Pipeline

	registry       *metrics.Registry
	metricsEnabled bool
}

// New creates a new manager.
func New() *Manager {
	return &Manager{
		pipelines: make([]pipeline.Pipeline, 0),
	}
}

// NewWithMetrics creates a new manager that records chain metrics.
func NewWithMetrics(metricsConfig metrics.Config) *Manager {
	m := New()

	if !metricsConfig.Enabled {
		return m
	}

	m.registry = metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		m.registry = metrics.NewRegistry(metricsConfig.Registry)
	}
	m.metricsEnabled = true

	return m
}

// Add registers a pipeline under its identifier. Identifiers must be unique;
// registering a duplicate fails with ErrDuplicatePipeline.
func (m *Manager) Add(p pipeline.Pipeline) error {
	if err := validation.NotNil("manager", "pipeline", p); err != nil {
		return err
	}
	if err := validation.NotEmpty("manager", "pipeline id", p.ID()); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.pipelines {
		if existing.ID() == p.ID() {
			return errors.Wrapf(nferrors.ErrDuplicatePipeline, "pipeline %q", p.ID())
		}
	}

	m.pipelines = append(m.pipelines, p)
	return nil
}

// Process runs input through the pipeline registered under id. It fails with
// a NotFoundError when no pipeline matches.
func (m *Manager) Process(ctx context.Context, input interface{}, id string) (*pipeline.Result, error) {
	p, ok := m.find(id)
	if !ok {
		return nil, nferrors.NewNotFoundError("manager", "pipeline", id)
	}
	return p.Process(ctx, input)
}

// Chain threads input through the pipelines named by ids in order, each
// step's output becoming the next step's input. The first failing step
// terminates the chain; later pipelines are not invoked.
func (m *Manager) Chain(ctx context.Context, input interface{}, ids ...string) (*pipeline.Result, error) {
	current := input
	var last *pipeline.Result

	for i, id := range ids {
		result, err := m.Process(ctx, current, id)

		if m.metricsEnabled {
			m.registry.ChainSteps.WithLabelValues(id).Inc()
		}

		if err != nil {
			if m.metricsEnabled {
				m.registry.ChainAborted.WithLabelValues(id).Inc()
			}
			return result, errors.Wrapf(err, "chain aborted at step %d (%s)", i, id)
		}

		current = result.Output
		last = result
	}

	return last, nil
}

// AllStats returns statistics for every registered pipeline keyed by
// identifier.
func (m *Manager) AllStats() map[string]pipeline.Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]pipeline.Stats, len(m.pipelines))
	for _, p := range m.pipelines {
		stats[p.ID()] = p.Stats()
	}
	return stats
}

// Pipelines returns a snapshot of the registered pipelines in registration
// order.
func (m *Manager) Pipelines() []pipeline.Pipeline {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]pipeline.Pipeline, len(m.pipelines))
	copy(out, m.pipelines)
	return out
}

// find scans registered pipelines for the first matching identifier.
// Registration keeps identifiers unique, so first match is the only match.
func (m *Manager) find(id string) (pipeline.Pipeline, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.pipelines {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// EnableMetrics enables chain metrics collection.
func (m *Manager) EnableMetrics(config metrics.Config) error {
	m.metricsEnabled = config.Enabled

	if config.Registry != nil {
		m.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables chain metrics collection.
func (m *Manager) DisableMetrics() {
	m.metricsEnabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (m *Manager) MetricsEnabled() bool {
	return m.metricsEnabled
}
