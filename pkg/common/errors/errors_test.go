package errors

import (
	"errors"
	"testing"
)

func TestCommonErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrInvalidInput", ErrInvalidInput, "invalid input"},
		{"ErrInvalidFormat", ErrInvalidFormat, "invalid data format"},
		{"ErrNotFound", ErrNotFound, "not found"},
		{"ErrDuplicatePipeline", ErrDuplicatePipeline, "duplicate pipeline id"},
		{"ErrInvalidConfiguration", ErrInvalidConfiguration, "invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("error should not be nil")
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "without hint",
			err: &ValidationError{
				Module: "processor",
				Field:  "data",
				Value:  -1,
				Reason: "not numeric",
			},
			want: "processor: invalid data=-1 (not numeric)",
		},
		{
			name: "with hint",
			err: &ValidationError{
				Module: "stream",
				Field:  "batch",
				Value:  0,
				Reason: "must not be empty",
				Hint:   "provide at least one token",
			},
			want: "stream: invalid batch=0 (must not be empty) - provide at least one token",
		},
		{
			name: "string value",
			err: &ValidationError{
				Module: "manager",
				Field:  "id",
				Value:  "",
				Reason: "cannot be empty",
			},
			want: "manager: invalid id= (cannot be empty)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	verr := &ValidationError{
		Module: "test",
		Field:  "field",
		Value:  0,
		Reason: "test",
	}

	if verr.Unwrap() != ErrInvalidInput {
		t.Errorf("Unwrap() = %v, want ErrInvalidInput", verr.Unwrap())
	}

	if !errors.Is(verr, ErrInvalidInput) {
		t.Error("ValidationError should wrap ErrInvalidInput")
	}

	if !IsValidation(verr) {
		t.Error("IsValidation should report true for a ValidationError")
	}
}

func TestValidationError_WithHint(t *testing.T) {
	err := NewValidationError("test", "field", 0, "invalid").
		WithHint("try a numeric value")

	if err.Hint != "try a numeric value" {
		t.Errorf("Hint = %q, want %q", err.Hint, "try a numeric value")
	}

	// Should return same instance for chaining
	result := err.WithHint("new hint")
	if result != err {
		t.Error("WithHint should return the same instance")
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("manager", "pipeline", "JSON_99")

	want := `manager: pipeline "JSON_99" not found`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should wrap ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should report true for a NotFoundError")
	}
}

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *OperationError
		want string
	}{
		{
			name: "without context",
			err: &OperationError{
				Module:    "JSON",
				Operation: "process",
				Cause:     errors.New("stage failed"),
			},
			want: "JSON.process failed: stage failed",
		},
		{
			name: "with context",
			err: &OperationError{
				Module:    "sensor",
				Operation: "ProcessBatch",
				Cause:     errors.New("bad temperature payload"),
				Context:   `token "temp:x"`,
			},
			want: `sensor.ProcessBatch failed: bad temperature payload (token "temp:x")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOperationError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	opErr := NewOperationError("test", "test", cause)

	if opErr.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", opErr.Unwrap(), cause)
	}

	if !errors.Is(opErr, cause) {
		t.Error("OperationError should wrap the cause error")
	}
}

func TestOperationError_PreservesValidationCause(t *testing.T) {
	cause := NewValidationError("processor", "data", "x", "not numeric")
	opErr := NewOperationError("JSON", "process", cause).
		WithContext("stage input")

	if !errors.Is(opErr, ErrInvalidInput) {
		t.Error("wrapped validation failures should still match ErrInvalidInput")
	}

	var verr *ValidationError
	if !errors.As(opErr, &verr) {
		t.Fatal("errors.As should find the ValidationError cause")
	}
	if verr.Field != "data" {
		t.Errorf("Field = %q, want %q", verr.Field, "data")
	}
}
