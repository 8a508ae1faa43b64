/*
Package nexusflow provides a Go library for polymorphic data processing with
validating processors, stateful streams, and composable pipelines.

Processing (pkg/processing):
  - processor: Validating processors for numeric, text, and log data
  - stream: Stateful batch streams for sensor, transaction, and event data

Pipelines (pkg/pipeline):
  - pipeline: Staged processing with format adapters and statistics
  - manager: Registry of pipelines with lookup and sequential chaining

Observability:
  - metrics: Prometheus instrumentation for pipelines and streams
  - reporting: Scheduled statistics snapshots
  - draw: DOT rendering of pipeline topology

Example usage:

	import (
		"github.com/codenexus/nexusflow/pkg/pipeline"
		"github.com/codenexus/nexusflow/pkg/pipeline/manager"
	)

	p := pipeline.New("JSON_01", pipeline.FormatJSON)
	p.AddStage(pipeline.NewInputStage()).
		AddStage(pipeline.NewTransformStage()).
		AddStage(pipeline.NewOutputStage())

	m := manager.New()
	if err := m.Add(p); err != nil {
		// duplicate or empty pipeline id
	}
	result, err := m.Process(context.Background(), input, "JSON_01")
*/
package nexusflow
