package stream

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/codenexus/nexusflow/internal/testutil"
	"github.com/codenexus/nexusflow/pkg/metrics"
)

func streamMetric(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			if mf.GetType() == dto.MetricType_COUNTER {
				total += m.GetCounter().GetValue()
			}
		}
		return total
	}
	return 0
}

func TestMetricsStream_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewWithConfigAndMetrics(NewSensorStream("SENSOR_001"), metrics.Config{
		Enabled:  true,
		Registry: reg,
	})

	_, err := s.ProcessBatch([]string{"temp:22.5", "humidity:65"})
	testutil.AssertNoError(t, err)

	_, err = s.ProcessBatch([]string{"temp:hot"})
	testutil.AssertError(t, err)

	testutil.AssertEqual(t, streamMetric(t, reg, "nexusflow_stream_batches_total"), 2.0)
	testutil.AssertEqual(t, streamMetric(t, reg, "nexusflow_stream_items_total"), 3.0)
	testutil.AssertEqual(t, streamMetric(t, reg, "nexusflow_stream_errors_total"), 1.0)

	filtered := s.Filter([]string{"temp:26.0", "temp:24.0"}, HighPriority)
	testutil.AssertEqual(t, len(filtered), 1)
	testutil.AssertEqual(t, streamMetric(t, reg, "nexusflow_stream_filtered_total"), 1.0)

	// Wrapped and unwrapped views agree.
	stats := s.Stats()
	testutil.AssertEqual(t, stats.StreamID, "SENSOR_001")
	testutil.AssertEqual(t, stats.Processed, int64(3))
	testutil.AssertEqual(t, stats.Errors, int64(1))
}

func TestMetricsStream_Disabled(t *testing.T) {
	s := NewWithConfigAndMetrics(NewEventStream("EVENT_001"), metrics.Config{Enabled: false})
	if _, ok := s.(*MetricsStream); ok {
		t.Fatal("disabled metrics config should return the base stream")
	}
}

func TestMetricsStream_Lifecycle(t *testing.T) {
	s := NewWithConfigAndMetrics(NewEventStream("EVENT_001"), metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	})

	ms, ok := s.(*MetricsStream)
	if !ok {
		t.Fatalf("expected MetricsStream, got %T", s)
	}

	testutil.AssertEqual(t, ms.MetricsEnabled(), true)
	ms.DisableMetrics()
	testutil.AssertEqual(t, ms.MetricsEnabled(), false)
}
