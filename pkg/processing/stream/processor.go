package stream

import (
	"sync"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

// BatchResult pairs a stream with the outcome of processing its batch.
type BatchResult struct {
	StreamID string
	Summary  string
	Err      error
}

// Processor handles multiple stream types polymorphically through the shared
// Stream interface.
type Processor struct {
	mu      sync.RWMutex
	streams []Stream
}

// NewProcessor creates a new stream processor.
func NewProcessor() *Processor {
	return &Processor{
		streams: make([]Stream, 0),
	}
}

// Add appends a stream to the processor.
func (sp *Processor) Add(s Stream) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	sp.streams = append(sp.streams, s)
}

// Streams returns a snapshot of the registered streams.
func (sp *Processor) Streams() []Stream {
	sp.mu.RLock()
	defer sp.mu.RUnlock()

	out := make([]Stream, len(sp.streams))
	copy(out, sp.streams)
	return out
}

// ProcessAll pairs stream i with batch i and processes each in order. A
// failing stream contributes an error result; the remaining streams still
// run.
func (sp *Processor) ProcessAll(batches [][]string) []BatchResult {
	streams := sp.Streams()

	results := make([]BatchResult, 0, len(streams))
	for i, s := range streams {
		if i >= len(batches) {
			results = append(results, BatchResult{
				StreamID: s.ID(),
				Err: nferrors.NewValidationError(s.Kind(), "batch", i, "no batch for stream").
					WithHint("provide one batch per registered stream"),
			})
			continue
		}

		summary, err := s.ProcessBatch(batches[i])
		results = append(results, BatchResult{
			StreamID: s.ID(),
			Summary:  summary,
			Err:      err,
		})
	}
	return results
}

// AllStats returns statistics for every registered stream keyed by
// identifier.
func (sp *Processor) AllStats() map[string]Stats {
	streams := sp.Streams()

	stats := make(map[string]Stats, len(streams))
	for _, s := range streams {
		stats[s.ID()] = s.Stats()
	}
	return stats
}
