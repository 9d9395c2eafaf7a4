// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// ErrUnknownField classifies strict parse failures caused by unknown keys.
// Use errors.Is(err, ErrUnknownField) instead of string matching.
var ErrUnknownField = errors.New("unknown config field")

// ParseError reports a config document that is not well-formed YAML.
// Field-level format problems are reported as validate.ValidationError
// instead, with the full field path.
type ParseError struct {
	Path string // file path, empty when parsing from memory
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse config: %v", e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
