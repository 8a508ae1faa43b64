// Package validation provides common validation utilities for the nexusflow library.
package validation

import (
	nferrors "github.com/codenexus/nexusflow/pkg/common/errors"
)

// NotEmpty validates that a string value is not empty.
// Returns a ValidationError if the string is empty.
func NotEmpty(module, field string, value string) error {
	if value == "" {
		return nferrors.NewValidationError(module, field, value, "cannot be empty").
			WithHint("provide a non-empty " + field)
	}
	return nil
}

// NotNil validates that an interface value is not nil.
// Returns a ValidationError if the value is nil.
func NotNil(module, field string, value interface{}) error {
	if value == nil {
		return nferrors.NewValidationError(module, field, nil, "cannot be nil").
			WithHint("provide a valid " + field)
	}
	return nil
}

// Positive validates that an integer value is positive (> 0).
// Returns a ValidationError if the value is not positive.
func Positive(module, field string, value int) error {
	if value <= 0 {
		return nferrors.NewValidationError(module, field, value, "must be positive").
			WithHint("value must be greater than 0")
	}
	return nil
}
