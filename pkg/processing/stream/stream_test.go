package stream

import (
	"errors"
	"testing"

	"github.com/codenexus/nexusflow/internal/testutil"
	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

func TestSensorStream_ProcessBatch(t *testing.T) {
	s := NewSensorStream("SENSOR_001")
	testutil.AssertEqual(t, s.ID(), "SENSOR_001")
	testutil.AssertEqual(t, s.Kind(), "sensor")

	summary, err := s.ProcessBatch([]string{"temp:22.5", "humidity:65", "pressure:1013"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary, "Sensor analysis: 3 readings processed, avg temp: 22.5°C")

	stats := s.Stats()
	testutil.AssertEqual(t, stats.Processed, int64(3))
	testutil.AssertEqual(t, stats.Errors, int64(0))
}

func TestSensorStream_RunningAverage(t *testing.T) {
	s := NewSensorStream("SENSOR_001")

	_, err := s.ProcessBatch([]string{"temp:20"})
	testutil.AssertNoError(t, err)

	summary, err := s.ProcessBatch([]string{"temp:30"})
	testutil.AssertNoError(t, err)

	// The average spans all batches, not just the last one.
	testutil.AssertEqual(t, summary, "Sensor analysis: 1 readings processed, avg temp: 25°C")
	testutil.AssertEqual(t, s.Stats().Processed, int64(2))
}

func TestSensorStream_MalformedToken(t *testing.T) {
	s := NewSensorStream("SENSOR_001")

	_, err := s.ProcessBatch([]string{"temp:hot"})
	testutil.AssertError(t, err)

	var opErr *nferrors.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}

	// The batch still counts toward processed.
	stats := s.Stats()
	testutil.AssertEqual(t, stats.Processed, int64(1))
	testutil.AssertEqual(t, stats.Errors, int64(1))
}

func TestSensorStream_Filter(t *testing.T) {
	s := NewSensorStream("SENSOR_003")
	batch := []string{"temp:26.0", "temp:24.0", "temp:27.0"}

	filtered := s.Filter(batch, HighPriority)
	testutil.AssertEqual(t, len(filtered), 2)
	testutil.AssertEqual(t, filtered[0], "temp:26.0")
	testutil.AssertEqual(t, filtered[1], "temp:27.0")

	// Unknown criteria pass the batch through unchanged.
	testutil.AssertEqual(t, len(s.Filter(batch, "")), 3)
	testutil.AssertEqual(t, len(s.Filter(batch, "all")), 3)
}

func TestTransactionStream_ProcessBatch(t *testing.T) {
	tr := NewTransactionStream("TRANS_001")
	testutil.AssertEqual(t, tr.Kind(), "transaction")

	summary, err := tr.ProcessBatch([]string{"buy:100", "sell:150", "buy:75"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary, "Transaction analysis: 3 operations, net flow: +25 units")
}

func TestTransactionStream_NegativeFlow(t *testing.T) {
	tr := NewTransactionStream("TRANS_001")

	summary, err := tr.ProcessBatch([]string{"sell:150"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary, "Transaction analysis: 1 operations, net flow: -150 units")

	// Net flow accumulates across batches.
	summary, err = tr.ProcessBatch([]string{"buy:200"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary, "Transaction analysis: 1 operations, net flow: +50 units")
}

func TestTransactionStream_IgnoresOtherTokens(t *testing.T) {
	tr := NewTransactionStream("TRANS_001")

	summary, err := tr.ProcessBatch([]string{"hold", "buy:10"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary, "Transaction analysis: 2 operations, net flow: +10 units")
	testutil.AssertEqual(t, tr.Stats().Processed, int64(2))
}

func TestTransactionStream_MalformedToken(t *testing.T) {
	tr := NewTransactionStream("TRANS_001")

	_, err := tr.ProcessBatch([]string{"buy:many"})
	testutil.AssertError(t, err)
	testutil.AssertEqual(t, tr.Stats().Errors, int64(1))
}

func TestTransactionStream_Filter(t *testing.T) {
	tr := NewTransactionStream("TRANS_003")

	filtered := tr.Filter([]string{"buy:150", "sell:50"}, HighPriority)
	testutil.AssertEqual(t, len(filtered), 1)
	testutil.AssertEqual(t, filtered[0], "buy:150")

	testutil.AssertEqual(t, len(tr.Filter([]string{"buy:150", "sell:50"}, "")), 2)
}

func TestEventStream_ProcessBatch(t *testing.T) {
	e := NewEventStream("EVENT_001")
	testutil.AssertEqual(t, e.Kind(), "event")

	summary, err := e.ProcessBatch([]string{"login", "error", "logout"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary, "Event analysis: 3 events, 1 errors detected")

	// Error counts accumulate across batches.
	summary, err = e.ProcessBatch([]string{"error", "warning"})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, summary, "Event analysis: 2 events, 2 errors detected")
}

func TestEventStream_Filter(t *testing.T) {
	e := NewEventStream("EVENT_001")

	filtered := e.Filter([]string{"login", "error", "logout", "error"}, HighPriority)
	testutil.AssertEqual(t, len(filtered), 2)

	testutil.AssertEqual(t, len(e.Filter([]string{"login"}, "")), 1)
}

func TestStats_Idempotent(t *testing.T) {
	s := NewSensorStream("SENSOR_001")

	_, err := s.ProcessBatch([]string{"temp:20.0", "humidity:70"})
	testutil.AssertNoError(t, err)

	first := s.Stats()
	second := s.Stats()
	testutil.AssertEqual(t, first, second)
}
