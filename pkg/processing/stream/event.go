package stream

import (
	"fmt"
)

// EventStream counts error events across batches of system event tokens.
type EventStream struct {
	base

	errorEvents int64
}

// NewEventStream creates a new event stream.
func NewEventStream(id string) *EventStream {
	return &EventStream{base: base{id: id}}
}

// Kind returns the stream variant name.
func (*EventStream) Kind() string {
	return "event"
}

// ProcessBatch counts "error" tokens and reports the batch size and the
// running error total.
func (e *EventStream) ProcessBatch(batch []string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.processed += int64(len(batch))

	for _, item := range batch {
		if item == "error" {
			e.errorEvents++
		}
	}

	return fmt.Sprintf("Event analysis: %d events, %d errors detected",
		len(batch), e.errorEvents), nil
}

// Filter keeps error events.
func (e *EventStream) Filter(batch []string, criteria Criteria) []string {
	if criteria != HighPriority {
		return batch
	}

	var out []string
	for _, item := range batch {
		if item == "error" {
			out = append(out, item)
		}
	}
	return out
}
