// Package stream provides stateful batch streams for tagged token data.
//
// A Stream consumes batches of short string tokens and accumulates running
// totals across calls: SensorStream averages temperature readings,
// TransactionStream tracks net buy/sell flow, and EventStream counts error
// events. Filter selects the high-priority subset of a batch using a
// variant-specific predicate.
//
// Running totals are owned by the stream instance and guarded by a mutex, so
// a single instance may be shared across goroutines.
//
// Processor fans a set of batches over a set of streams through the shared
// interface, collecting per-stream results instead of aborting on the first
// failure.
package stream
