// Package metrics provides Prometheus instrumentation for nexusflow components.
//
// This package enables monitoring and observability for nexusflow's pipelines,
// streams, and manager chaining through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Pipeline processing (invocations, errors, stage errors, durations)
//   - Batch streams (batches, items, errors, filtered items)
//   - Pipeline chaining (steps executed, aborted chains)
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Pipeline with metrics
//	p := pipeline.NewWithMetrics("JSON_01", pipeline.FormatJSON)
//
//	// Stream with metrics
//	s := stream.NewWithMetrics(stream.NewSensorStream("SENSOR_001"))
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	p := pipeline.NewWithConfigAndMetrics("JSON_01", pipeline.FormatJSON, config)
//
// # Available Metrics
//
// ## Pipeline Metrics
//
//   - nexusflow_pipeline_processed_total: Total number of pipeline process invocations
//   - nexusflow_pipeline_errors_total: Total number of failed invocations
//   - nexusflow_pipeline_stage_errors_total: Stage failures by stage name
//   - nexusflow_pipeline_process_duration_seconds: Processing durations
//   - nexusflow_pipeline_success_rate: Last reported success rate (set by reporting)
//   - nexusflow_pipeline_processed_count: Last reported processed count (set by reporting)
//   - nexusflow_pipeline_error_count: Last reported error count (set by reporting)
//
// ## Stream Metrics
//
//   - nexusflow_stream_batches_total: Batches processed by streams
//   - nexusflow_stream_items_total: Batch items processed by streams
//   - nexusflow_stream_errors_total: Batch processing errors
//   - nexusflow_stream_filtered_total: Items retained by high-priority filtering
//
// ## Chain Metrics
//
//   - nexusflow_chain_steps_total: Chain steps executed
//   - nexusflow_chain_aborted_total: Chains aborted by a failing step
//
// # Labels
//
//   - pipeline: User-provided pipeline identifier
//   - format: Pipeline format adapter ("JSON", "CSV", "STREAM")
//   - stage: Stage name within a pipeline
//   - stream: User-provided stream identifier
//   - kind: Stream kind ("sensor", "transaction", "event")
package metrics
