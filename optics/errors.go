package optics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a missing name, an unknown unit or
	// representation tag, or inputs of mismatched length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a data directory or dataset file that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMalformedData reports a dataset file that cannot be decoded into
	// (frequency, real, imaginary) triples.
	ErrMalformedData = errors.New("malformed data")

	// ErrNotImplemented reports an interpolation method that is not supported.
	// Errors wrapping it also match ErrInvalidArgument.
	ErrNotImplemented = fmt.Errorf("not implemented: %w", ErrInvalidArgument)
)
