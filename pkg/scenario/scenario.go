// Package scenario expands datasets, metrics and x-axes into the chart
// matrix and runs each combination through the harness.
package scenario

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/eunmann/sort-eval/pkg/dataset"
	"github.com/eunmann/sort-eval/pkg/distgen"
	"github.com/eunmann/sort-eval/pkg/harness"
)

// Sentinel errors for scenario selection.
var (
	// ErrUnknownAxis is returned by ParseAxis.
	ErrUnknownAxis = errors.New("unknown axis")

	// ErrNoScenarios indicates a filter that matched nothing.
	ErrNoScenarios = errors.New("no scenarios selected")
)

// Axis selects the x-value plotted for each input.
type Axis int

// Supported axes.
const (
	// BySize plots the input length.
	BySize Axis = iota
	// BySortedness plots the inversion count of the input.
	BySortedness
)

// String returns the identifier used in scenario IDs and config.
func (a Axis) String() string {
	if a == BySortedness {
		return "sortedness"
	}
	return "size"
}

// Label returns the chart axis label.
func (a Axis) Label() string {
	if a == BySortedness {
		return "Degree Of Sortedness"
	}
	return "Data Size"
}

// ParseAxis parses an axis identifier.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "size":
		return BySize, nil
	case "sortedness", "inversions":
		return BySortedness, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
	}
}

// Axes returns both axes in reporting order.
func Axes() []Axis {
	return []Axis{BySize, BySortedness}
}

// Dataset is a numbered data source. Synthetic datasets carry a Spec;
// the rest are loaded from Source.
type Dataset struct {
	// Number is the 1-based dataset number shown in chart titles.
	Number int
	Name   string
	Title  string
	Spec   *distgen.Spec
	Source dataset.Source
}

// Synthetic reports whether the dataset is generated.
func (d Dataset) Synthetic() bool {
	return d.Spec != nil
}

// Scenario is one chart: a dataset measured by one metric against one axis.
type Scenario struct {
	Dataset Dataset
	Metric  harness.Metric
	Axis    Axis
}

// ID returns "<dataset>/<metric>/<axis>".
func (s Scenario) ID() string {
	return s.Dataset.Name + "/" + s.Metric.String() + "/" + s.Axis.String()
}

// ChartTitle returns "<x> vs <y> - Dataset <n>".
func (s Scenario) ChartTitle() string {
	return fmt.Sprintf("%s vs %s - Dataset %d", s.Axis.Label(), metricName(s.Metric), s.Dataset.Number)
}

func metricName(m harness.Metric) string {
	if m == harness.Memory {
		return "Memory Usage"
	}
	return "Run Time"
}

// Matrix returns every dataset × metric × axis combination, dataset-major.
func Matrix(datasets []Dataset, metrics []harness.Metric, axes []Axis) []Scenario {
	out := make([]Scenario, 0, len(datasets)*len(metrics)*len(axes))
	for _, d := range datasets {
		for _, m := range metrics {
			for _, a := range axes {
				out = append(out, Scenario{Dataset: d, Metric: m, Axis: a})
			}
		}
	}
	return out
}

// Select keeps scenarios whose ID matches any of the path.Match patterns
// (for example "uniform/*/size"). No patterns keeps everything.
func Select(all []Scenario, patterns []string) ([]Scenario, error) {
	if len(patterns) == 0 {
		return all, nil
	}

	var out []Scenario
	for _, s := range all {
		for _, p := range patterns {
			ok, err := path.Match(p, s.ID())
			if err != nil {
				return nil, fmt.Errorf("scenario pattern %q: %w", p, err)
			}
			if ok {
				out = append(out, s)
				break
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoScenarios, strings.Join(patterns, ", "))
	}
	return out, nil
}
