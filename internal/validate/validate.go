// SPDX-License-Identifier: MIT

// Package validate provides configuration validation utilities.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// Error represents a single validation failure.
type Error struct {
	Field   string      // Field path that failed validation (e.g. "colors.normal.red")
	Value   interface{} // The invalid value
	Message string      // Human-readable error message
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// Validator accumulates validation errors and can produce a ValidationError when invalid.
type Validator struct {
	errors []Error
}

// ValidationError bundles multiple validation errors into a single error value.
type ValidationError struct {
	errors []Error
}

// New creates a new validator.
func New() *Validator {
	return &Validator{
		errors: make([]Error, 0),
	}
}

// AddError adds a validation error.
func (v *Validator) AddError(field, message string, value interface{}) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been accumulated.
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns all accumulated validation errors.
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err converts the accumulated validation errors into an error value.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}

	copied := make([]Error, len(v.errors))
	copy(copied, v.errors)

	return ValidationError{errors: copied}
}

// Errors returns the individual validation errors making up the validation failure.
func (e ValidationError) Errors() []Error {
	return e.errors
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if len(e.errors) == 0 {
		return ""
	}

	if len(e.errors) == 1 {
		return e.errors[0].Error()
	}

	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// hexColorPattern matches color scalars of the form 0xRRGGBB.
var hexColorPattern = regexp.MustCompile(`^0x[0-9A-Fa-f]{6}$`)

// HexColor validates a color string of the literal form 0x followed by six hex digits.
func (v *Validator) HexColor(field, value string) {
	if !hexColorPattern.MatchString(value) {
		v.AddError(field,
			fmt.Sprintf("must be a hex color of the form 0xRRGGBB, got %q", value),
			value)
	}
}

// IsHexColor reports whether value is a well-formed 0xRRGGBB color scalar.
func IsHexColor(value string) bool {
	return hexColorPattern.MatchString(value)
}

// NotEmpty validates that a string is not empty or whitespace-only.
func (v *Validator) NotEmpty(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "value cannot be empty", value)
	}
}

// PositiveFloat validates that a number is strictly positive.
func (v *Validator) PositiveFloat(field string, value float64) {
	if !(value > 0) {
		v.AddError(field, fmt.Sprintf("value must be positive, got %v", value), value)
	}
}

// Min validates that an integer is at least minVal.
func (v *Validator) Min(field string, value, minVal int) {
	if value < minVal {
		v.AddError(field,
			fmt.Sprintf("value must be >= %d, got %d", minVal, value),
			value)
	}
}

