// Package pipeline implements the aggregation and workbook assembly stages.
package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidMapping indicates a role mapping that violates its invariants.
var ErrInvalidMapping = errors.New("invalid role mapping")

// InvalidMappingError reports which mapping constraint was violated.
type InvalidMappingError struct {
	Constraint string
}

func (e *InvalidMappingError) Error() string {
	return fmt.Sprintf("invalid role mapping: %s", e.Constraint)
}

func (e *InvalidMappingError) Unwrap() error {
	return ErrInvalidMapping
}

func invalidMapping(format string, args ...interface{}) error {
	return &InvalidMappingError{Constraint: fmt.Sprintf(format, args...)}
}
