// Package report holds benchmark results as line-chart data and renders
// them as a terminal table, JSON or long-format Parquet.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eunmann/sort-eval/pkg/harness"
	"github.com/eunmann/sort-eval/pkg/hostinfo"
)

// Sentinel errors for report assembly.
var (
	// ErrEmptyChart indicates a chart without series data.
	ErrEmptyChart = errors.New("chart has no series")

	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("unknown report format")
)

// Chart is one line chart: an x-axis and one line per algorithm. Unit is
// the short unit of every value ("ms" or "KB").
type Chart struct {
	// Scenario identifies the scenario that produced the chart.
	Scenario string
	Title    string
	Subtitle string
	XLabel   string
	YLabel   string
	Unit     string
	X        []int64
	Series   *harness.Series
}

// Validate checks that every series has one value per x point.
func (c *Chart) Validate() error {
	if c.Series == nil {
		return fmt.Errorf("%s: %w", c.Title, ErrEmptyChart)
	}
	if err := c.Series.Validate(len(c.X)); err != nil {
		return fmt.Errorf("chart %q: %w", c.Title, err)
	}
	return nil
}

type chartJSON struct {
	Scenario string          `json:"scenario,omitempty"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle,omitempty"`
	XLabel   string          `json:"x_label"`
	YLabel   string          `json:"y_label"`
	Unit     string          `json:"unit,omitempty"`
	X        []int64         `json:"x"`
	Series   []harness.Entry `json:"series"`
}

// MarshalJSON encodes the chart with its series in algorithm order.
func (c *Chart) MarshalJSON() ([]byte, error) {
	out := chartJSON{
		Scenario: c.Scenario,
		Title:    c.Title,
		Subtitle: c.Subtitle,
		XLabel:   c.XLabel,
		YLabel:   c.YLabel,
		Unit:     c.Unit,
		X:        c.X,
	}
	if c.Series != nil {
		out.Series = c.Series.Entries()
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a chart written by MarshalJSON.
func (c *Chart) UnmarshalJSON(data []byte) error {
	var in chartJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	series := harness.NewSeries()
	for _, e := range in.Series {
		for _, v := range e.Values {
			series.Append(e.Name, v)
		}
	}
	*c = Chart{
		Scenario: in.Scenario,
		Title:    in.Title,
		Subtitle: in.Subtitle,
		XLabel:   in.XLabel,
		YLabel:   in.YLabel,
		Unit:     in.Unit,
		X:        in.X,
		Series:   series,
	}
	return nil
}

// Report is the output of one benchmark run.
type Report struct {
	RunID       string            `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Host        hostinfo.Snapshot `json:"host"`
	Trials      int               `json:"trials"`
	Charts      []*Chart          `json:"charts"`
}

// Validate checks every chart.
func (r *Report) Validate() error {
	var errs []error
	for _, c := range r.Charts {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
