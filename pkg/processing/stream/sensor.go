package stream

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

// SensorStream accumulates temperature readings from environmental sensor
// tokens of the form "temp:<float>". Other tokens count toward the batch but
// carry no temperature.
type SensorStream struct {
	base

	totalTemp float64
	tempCount int64
}

// NewSensorStream creates a new sensor stream.
func NewSensorStream(id string) *SensorStream {
	return &SensorStream{base: base{id: id}}
}

// Kind returns the stream variant name.
func (*SensorStream) Kind() string {
	return "sensor"
}

// ProcessBatch extracts temperature readings and reports the batch size and
// the running average temperature.
func (s *SensorStream) ProcessBatch(batch []string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processed += int64(len(batch))

	for _, item := range batch {
		_, payload, found := strings.Cut(item, "temp:")
		if !found {
			continue
		}

		temp, err := strconv.ParseFloat(payload, 64)
		if err != nil {
			s.errors++
			return "", nferrors.NewOperationError(s.Kind(), "ProcessBatch",
				errors.Wrapf(err, "token %q", item)).
				WithContext("stream " + s.id)
		}

		s.totalTemp += temp
		s.tempCount++
	}

	avgTemp := 0.0
	if s.tempCount > 0 {
		avgTemp = s.totalTemp / float64(s.tempCount)
	}

	return fmt.Sprintf("Sensor analysis: %d readings processed, avg temp: %s°C",
		len(batch), strconv.FormatFloat(avgTemp, 'g', -1, 64)), nil
}

// Filter keeps readings whose parsed temperature exceeds 25.
func (s *SensorStream) Filter(batch []string, criteria Criteria) []string {
	if criteria != HighPriority {
		return batch
	}

	var out []string
	for _, item := range batch {
		_, payload, found := strings.Cut(item, "temp:")
		if !found {
			continue
		}
		if temp, err := strconv.ParseFloat(payload, 64); err == nil && temp > 25 {
			out = append(out, item)
		}
	}
	return out
}
