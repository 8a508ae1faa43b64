// Package errors defines the error types used across the nexusflow library.
package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the nexusflow library

var (
	// ErrInvalidInput indicates that input failed a processor's structural validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFormat indicates that input is not in the format a stage expects
	ErrInvalidFormat = errors.New("invalid data format")

	// ErrNotFound indicates that a lookup by identifier had no match
	ErrNotFound = errors.New("not found")

	// ErrDuplicatePipeline indicates that a pipeline identifier is already registered
	ErrDuplicatePipeline = errors.New("duplicate pipeline id")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsValidation returns true if the error indicates input that failed
// structural validation
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidFormat)
}

// IsNotFound returns true if the error indicates a failed identifier lookup
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ValidationError provides structured information about input that failed
// a structural precondition.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrInvalidInput) to match.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NotFoundError indicates that no registered entity matches an identifier.
type NotFoundError struct {
	Module string
	Kind   string
	ID     string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(module, kind, id string) *NotFoundError {
	return &NotFoundError{Module: module, Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s %q not found", e.Module, e.Kind, e.ID)
}

// Unwrap allows errors.Is(err, ErrNotFound) to match.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// OperationError wraps a failure of a named operation with its module and
// optional context.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates a new OperationError.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches context and returns the same error for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}
