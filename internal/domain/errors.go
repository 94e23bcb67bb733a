package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation signals bad or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing product.
	ErrNotFound = errors.New("product not found")
	// ErrDimensionMismatch signals a vector dimension mismatch.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrEngineUnavailable signals that the external search engine cannot be reached.
	ErrEngineUnavailable = errors.New("search engine unavailable")
)

// DimensionMismatchError wraps ErrDimensionMismatch with the offending lengths.
type DimensionMismatchError struct {
	Got  int
	Want int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("%s: got %d, want %d", ErrDimensionMismatch.Error(), e.Got, e.Want)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// NewDimensionMismatch creates a dimension mismatch error.
func NewDimensionMismatch(got, want int) error {
	return &DimensionMismatchError{Got: got, Want: want}
}
