package mcda

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	// KindShape covers missing alternatives, column length mismatches and
	// too few alternatives.
	KindShape ErrorKind = "shape"
	// KindValue covers empty, non-numeric or out-of-range cells and weights.
	KindValue ErrorKind = "value"
)

// ErrDimensionMismatch is returned when a matrix, weight vector and registry
// do not agree on the number of criteria or alternatives.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ValidationError reports bad caller input. Criterion is empty and Row is 0
// when the failure is not tied to a specific criterion or alternative.
type ValidationError struct {
	Kind      ErrorKind `json:"kind"`
	Criterion string    `json:"criterion,omitempty"`
	Row       int       `json:"row,omitempty"`
	Msg       string    `json:"error"`
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func shapeError(criterion string, row int, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: KindShape, Criterion: criterion, Row: row, Msg: fmt.Sprintf(format, args...)}
}

func valueError(criterion string, row int, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: KindValue, Criterion: criterion, Row: row, Msg: fmt.Sprintf(format, args...)}
}
