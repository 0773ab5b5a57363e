package harness

import "errors"

// Sentinel errors for the benchmark harness.
var (
	// ErrSeriesMisaligned indicates a series without one value per x-axis point.
	ErrSeriesMisaligned = errors.New("series length does not match x-axis")

	// ErrUnknownMetric is returned by ParseMetric.
	ErrUnknownMetric = errors.New("unknown metric")
)
