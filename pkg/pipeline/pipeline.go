package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

// Format identifies the transport adapter a pipeline was built for. It tags
// process failures so callers can tell which adapter rejected the data.
type Format string

// Supported format adapters.
const (
	FormatJSON   Format = "JSON"
	FormatCSV    Format = "CSV"
	FormatStream Format = "STREAM"
)

// Stage represents a single processing stage in a pipeline.
type Stage interface {
	// Execute processes the input data and returns the result.
	Execute(ctx context.Context, input interface{}) (interface{}, error)

	// Name returns a unique identifier for this stage.
	Name() string
}

// StageFunc is a function type that implements the Stage interface.
type StageFunc struct {
	name string
	fn   func(ctx context.Context, input interface{}) (interface{}, error)
}

// Execute implements the Stage interface for StageFunc.
func (sf *StageFunc) Execute(ctx context.Context, input interface{}) (interface{}, error) {
	return sf.fn(ctx, input)
}

// Name returns the stage name.
func (sf *StageFunc) Name() string {
	return sf.name
}

// NewStageFunc creates a new stage from a function.
func NewStageFunc(name string, fn func(ctx context.Context, input interface{}) (interface{}, error)) Stage {
	return &StageFunc{name: name, fn: fn}
}

// Pipeline processes data through an ordered sequence of stages.
type Pipeline interface {
	// ID returns the pipeline identifier.
	ID() string

	// Format returns the pipeline's format adapter.
	Format() Format

	// AddStage appends a stage to the pipeline.
	AddStage(stage Stage) Pipeline

	// AddStageFunc appends a stage function to the pipeline.
	AddStageFunc(name string, fn func(ctx context.Context, input interface{}) (interface{}, error)) Pipeline

	// Stages returns all stages in the pipeline.
	Stages() []Stage

	// Process runs the input through the stage sequence.
	Process(ctx context.Context, input interface{}) (*Result, error)

	// Stats returns pipeline processing statistics.
	Stats() Stats
}

// Result represents the outcome of a single pipeline run.
type Result struct {
	// RunID uniquely identifies this run.
	RunID string

	// Pipeline is the identifier of the pipeline that produced this result.
	Pipeline string

	// Input is the original input data.
	Input interface{}

	// Output is the final output data. On failure it holds the output of the
	// last successful stage.
	Output interface{}

	// Err is any error that occurred during the run.
	Err error

	// StageResults contains the outcome of each executed stage.
	StageResults []StageResult

	// Duration is the total run time.
	Duration time.Duration

	// StartTime is when the run started.
	StartTime time.Time

	// EndTime is when the run finished.
	EndTime time.Time
}

// StageResult represents the outcome of a single stage execution.
type StageResult struct {
	// StageName is the name of the stage.
	StageName string

	// Output is the output from this stage.
	Output interface{}

	// Err is any error from this stage.
	Err error

	// Duration is how long this stage took.
	Duration time.Duration
}

// Stats holds pipeline processing statistics.
type Stats struct {
	// Processed is the number of Process calls, successful or not.
	Processed int64

	// Errors is the number of failed Process calls. Never exceeds Processed.
	Errors int64

	// SuccessRate is (Processed-Errors)/Processed in percent, 0 when nothing
	// has been processed yet.
	SuccessRate float64
}

// pipeline implements the Pipeline interface.
type pipeline struct {
	id     string
	format Format

	mu        sync.RWMutex
	stages    []Stage
	processed int64
	errors    int64
}

// New creates a new pipeline with the given identifier and format adapter.
func New(id string, format Format) Pipeline {
	return &pipeline{
		id:     id,
		format: format,
		stages: make([]Stage, 0),
	}
}

// ID returns the pipeline identifier.
func (p *pipeline) ID() string {
	return p.id
}

// Format returns the pipeline's format adapter.
func (p *pipeline) Format() Format {
	return p.format
}

// AddStage appends a stage to the pipeline.
func (p *pipeline) AddStage(stage Stage) Pipeline {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stages = append(p.stages, stage)
	return p
}

// AddStageFunc appends a stage function to the pipeline.
func (p *pipeline) AddStageFunc(name string, fn func(ctx context.Context, input interface{}) (interface{}, error)) Pipeline {
	return p.AddStage(NewStageFunc(name, fn))
}

// Stages returns all stages in the pipeline.
func (p *pipeline) Stages() []Stage {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stages := make([]Stage, len(p.stages))
	copy(stages, p.stages)
	return stages
}

// Process runs the input through the stage sequence left to right, failing
// fast on the first stage error. The processed counter increments exactly
// once per call regardless of outcome.
func (p *pipeline) Process(ctx context.Context, input interface{}) (*Result, error) {
	startTime := time.Now()
	result := &Result{
		RunID:     uuid.New().String(),
		Pipeline:  p.id,
		Input:     input,
		StartTime: startTime,
	}

	p.mu.Lock()
	p.processed++
	stages := make([]Stage, len(p.stages))
	copy(stages, p.stages)
	p.mu.Unlock()

	current := input
	var failedStage string
	var failure error

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			failedStage = stage.Name()
			failure = err
			break
		}

		stageStart := time.Now()
		output, err := stage.Execute(ctx, current)
		result.StageResults = append(result.StageResults, StageResult{
			StageName: stage.Name(),
			Output:    output,
			Err:       err,
			Duration:  time.Since(stageStart),
		})

		if err != nil {
			failedStage = stage.Name()
			failure = err
			break
		}
		current = output
	}

	result.Output = current
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	if failure != nil {
		p.mu.Lock()
		p.errors++
		p.mu.Unlock()

		opErr := nferrors.NewOperationError(string(p.format), "process", failure).
			WithContext("pipeline " + p.id + ", stage " + failedStage)
		result.Err = opErr
		return result, opErr
	}

	return result, nil
}

// Stats returns pipeline processing statistics. The success rate is computed
// on read, so repeated calls without intervening Process calls are identical.
func (p *pipeline) Stats() Stats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := Stats{
		Processed: p.processed,
		Errors:    p.errors,
	}
	if stats.Processed > 0 {
		stats.SuccessRate = float64(stats.Processed-stats.Errors) / float64(stats.Processed) * 100
	}
	return stats
}
