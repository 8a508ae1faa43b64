package pipeline

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

// InputStage validates that input is a structured key/value mapping and
// passes it through unchanged.
type InputStage struct{}

// NewInputStage creates a new input validation stage.
func NewInputStage() *InputStage {
	return &InputStage{}
}

// Name returns the stage name.
func (*InputStage) Name() string {
	return "input"
}

// Execute passes mappings through and rejects everything else.
func (*InputStage) Execute(_ context.Context, input interface{}) (interface{}, error) {
	if m, ok := input.(map[string]interface{}); ok {
		return m, nil
	}
	return nil, errors.Wrapf(nferrors.ErrInvalidFormat, "input stage expects a mapping, got %T", input)
}

// TransformStage passes mappings through unchanged and wraps any other input
// into a single-key mapping.
type TransformStage struct{}

// NewTransformStage creates a new transformation stage.
func NewTransformStage() *TransformStage {
	return &TransformStage{}
}

// Name returns the stage name.
func (*TransformStage) Name() string {
	return "transform"
}

// Execute normalizes input into a mapping.
func (*TransformStage) Execute(_ context.Context, input interface{}) (interface{}, error) {
	if m, ok := input.(map[string]interface{}); ok {
		return m, nil
	}
	return map[string]interface{}{"data": input}, nil
}

// OutputStage converts input to its textual representation. It never fails.
type OutputStage struct{}

// NewOutputStage creates a new output formatting stage.
func NewOutputStage() *OutputStage {
	return &OutputStage{}
}

// Name returns the stage name.
func (*OutputStage) Name() string {
	return "output"
}

// Execute renders the input as text.
func (*OutputStage) Execute(_ context.Context, input interface{}) (interface{}, error) {
	return fmt.Sprint(input), nil
}
