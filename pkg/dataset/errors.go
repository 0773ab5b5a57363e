package dataset

import "errors"

// Sentinel errors for dataset ingestion.
var (
	// ErrSourceUnavailable indicates the file or object could not be opened
	// or read.
	ErrSourceUnavailable = errors.New("dataset source unavailable")

	// ErrMalformedRow indicates a row whose target field is missing or not
	// an integer.
	ErrMalformedRow = errors.New("malformed dataset row")

	// ErrUnsupportedFormat indicates a path whose format cannot be read.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)
