package packlist

import (
	"packlist/pkg/packlist/input"
	"packlist/pkg/packlist/pipeline"
)

// ErrInvalidMapping indicates a role mapping that violates its invariants:
// required roles not all set, not all distinct, or none of the identity
// columns present in the table.
var ErrInvalidMapping = pipeline.ErrInvalidMapping

// ErrUnreadableSource indicates the uploaded file could not be read as a
// spreadsheet.
var ErrUnreadableSource = input.ErrUnreadableSource

// InvalidMappingError reports which mapping constraint was violated.
type InvalidMappingError = pipeline.InvalidMappingError
