// Package pipeline provides staged data processing with format adapters and
// per-pipeline statistics.
//
// A Pipeline holds an ordered, append-only sequence of stages. Process feeds
// input through the stages left to right, each stage's output becoming the
// next stage's input, and fails fast on the first stage error. Every Process
// call increments the processed counter exactly once; failed calls also
// increment the error counter, so errors never exceed processed.
//
// Pipelines carry a Format identifying the adapter (JSON, CSV, STREAM) that
// tags failures, and return a Result per run carrying a unique run ID, the
// per-stage outcomes, and timing.
//
// Counters are guarded by a mutex, so a single Pipeline instance may be
// shared across goroutines; stage execution itself is sequential.
package pipeline
