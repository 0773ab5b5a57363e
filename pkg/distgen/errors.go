package distgen

import "errors"

// Sentinel errors for distribution generation.
var (
	// ErrInputUnderflow indicates a dataset holds fewer values than requested.
	ErrInputUnderflow = errors.New("dataset smaller than requested size")

	// ErrInvalidSize indicates a negative size.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidSpec indicates a malformed distribution spec.
	ErrInvalidSpec = errors.New("invalid distribution spec")
)
