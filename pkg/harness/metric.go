package harness

import (
	"fmt"
	"strings"
)

// Metric selects what a trial measures.
type Metric int

// Supported metrics.
const (
	// RunTime is wall-clock time of one sort call in whole milliseconds.
	RunTime Metric = iota
	// Memory is the heap in-use delta across one sort call in kilobytes.
	Memory
)

// String returns the identifier used in scenario IDs and config.
func (m Metric) String() string {
	switch m {
	case RunTime:
		return "runtime"
	case Memory:
		return "memory"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// Label returns the chart axis label.
func (m Metric) Label() string {
	switch m {
	case RunTime:
		return "Run Time(in ms)"
	case Memory:
		return "Memory Usage(in KiloBytes)"
	default:
		return m.String()
	}
}

// Unit returns the short unit name.
func (m Metric) Unit() string {
	if m == Memory {
		return "KB"
	}
	return "ms"
}

// ParseMetric parses a metric identifier.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "runtime", "run_time", "time":
		return RunTime, nil
	case "memory", "mem":
		return Memory, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
}

// Metrics returns both metrics in reporting order.
func Metrics() []Metric {
	return []Metric{RunTime, Memory}
}
