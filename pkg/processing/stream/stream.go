package stream

import (
	"sync"
)

// Criteria selects a subset of a batch in Filter calls.
type Criteria string

// HighPriority selects items exceeding a variant-specific magnitude threshold.
const HighPriority Criteria = "high-priority"

// Stats holds stream processing statistics.
type Stats struct {
	// StreamID identifies the stream.
	StreamID string

	// Processed is the number of batch items consumed, successful or not.
	Processed int64

	// Errors is the number of failed ProcessBatch calls.
	Errors int64
}

// Stream is the shared contract for all batch streams.
type Stream interface {
	// ID returns the stream identifier.
	ID() string

	// Kind returns the stream variant name.
	Kind() string

	// ProcessBatch consumes a batch of tokens, updates the stream's running
	// totals, and returns a batch-level summary.
	ProcessBatch(batch []string) (string, error)

	// Filter returns the subset of batch matching the criteria. Unknown
	// criteria return the batch unchanged.
	Filter(batch []string, criteria Criteria) []string

	// Stats returns stream processing statistics.
	Stats() Stats
}

// base carries the identity and counters shared by all stream variants.
// Variants embed it and take its mutex around their own running totals.
type base struct {
	id string

	mu        sync.Mutex
	processed int64
	errors    int64
}

// ID returns the stream identifier.
func (b *base) ID() string {
	return b.id
}

// Stats returns stream processing statistics.
func (b *base) Stats() Stats {
	b.mu.Lock()
	defer b.mu.Unlock()

	return Stats{
		StreamID:  b.id,
		Processed: b.processed,
		Errors:    b.errors,
	}
}
