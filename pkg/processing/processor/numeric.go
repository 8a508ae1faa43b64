package processor

import (
	"fmt"
	"strconv"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

// Numeric processes single numbers or non-empty sequences of numbers.
type Numeric struct{}

// NewNumeric creates a new numeric processor.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Name returns the processor kind.
func (*Numeric) Name() string {
	return "numeric"
}

// Validate reports whether input is a number or a non-empty numeric sequence.
func (*Numeric) Validate(input interface{}) bool {
	_, ok := toNumbers(input)
	return ok
}

// Process summarizes the input with its count, sum, and arithmetic mean.
func (n *Numeric) Process(input interface{}) (string, error) {
	numbers, ok := toNumbers(input)
	if !ok {
		return "", nferrors.NewValidationError(n.Name(), "data", input, "not numeric").
			WithHint("provide a number or a non-empty sequence of numbers")
	}

	var sum float64
	for _, v := range numbers {
		sum += v
	}
	avg := sum / float64(len(numbers))

	return fmt.Sprintf("Processed %d numeric values, sum=%s, avg=%s",
		len(numbers), formatFloat(sum), formatFloat(avg)), nil
}

// toNumbers coerces input into a slice of float64. Empty sequences are
// rejected so the mean is always defined.
func toNumbers(input interface{}) ([]float64, bool) {
	switch v := input.(type) {
	case []float64:
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	case []int:
		if len(v) == 0 {
			return nil, false
		}
		out := make([]float64, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out, true
	case []int64:
		if len(v) == 0 {
			return nil, false
		}
		out := make([]float64, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out, true
	case []interface{}:
		if len(v) == 0 {
			return nil, false
		}
		out := make([]float64, len(v))
		for i, e := range v {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	default:
		f, ok := toFloat(input)
		if !ok {
			return nil, false
		}
		return []float64{f}, true
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
