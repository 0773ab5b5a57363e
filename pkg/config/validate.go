package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/eunmann/sort-eval/pkg/distgen"
	"github.com/eunmann/sort-eval/pkg/harness"
	"github.com/eunmann/sort-eval/pkg/report"
	"github.com/eunmann/sort-eval/pkg/scenario"
)

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Trials < 1 {
		add("trials must be >= 1, got %d", c.Trials)
	}
	if len(c.Sizes) == 0 {
		add("at least one size is required")
	}
	for _, s := range c.Sizes {
		if s < 0 {
			add("size must be >= 0, got %d", s)
		}
	}

	if len(c.Datasets) == 0 {
		add("at least one dataset is required")
	}
	seen := make(map[string]bool, len(c.Datasets))
	for i, d := range c.Datasets {
		if d.Name == "" {
			add("dataset %d has no name", i+1)
		} else if seen[d.Name] {
			add("duplicate dataset name %q", d.Name)
		}
		seen[d.Name] = true
		if err := d.validate(); err != nil {
			errs = append(errs, err)
		}
	}

	for _, m := range c.Scenarios.Metrics {
		if _, err := harness.ParseMetric(m); err != nil {
			add("scenarios.metrics: %v", err)
		}
	}
	for _, a := range c.Scenarios.Axes {
		if _, err := scenario.ParseAxis(a); err != nil {
			add("scenarios.axes: %v", err)
		}
	}
	for _, name := range c.Scenarios.Datasets {
		if !seen[name] {
			add("scenarios.datasets: unknown dataset %q", name)
		}
	}

	for _, f := range c.Output.Formats {
		if _, err := report.ParseFormat(f); err != nil {
			add("output.formats: %v", err)
		}
	}

	if c.S3.Concurrency < 0 || c.S3.PartSize < 0 {
		add("s3 settings must not be negative")
	}

	return errors.Join(errs...)
}

var knownKinds = []string{KindUniform, KindDiscrete, KindCSV, KindParquet}

func (d DatasetConfig) validate() error {
	if !slices.Contains(knownKinds, d.Kind) {
		return fmt.Errorf("%w: dataset %q: unknown kind %q", ErrInvalidConfig, d.Name, d.Kind)
	}

	switch d.Kind {
	case KindCSV, KindParquet:
		if d.Path == "" {
			return fmt.Errorf("%w: dataset %q: path is required for kind %s", ErrInvalidConfig, d.Name, d.Kind)
		}
		if d.Column < 0 {
			return fmt.Errorf("%w: dataset %q: column must be >= 0", ErrInvalidConfig, d.Name)
		}
	case KindDiscrete:
		if err := d.Spec().Validate(); err != nil {
			return fmt.Errorf("%w: dataset %q: %v", ErrInvalidConfig, d.Name, err)
		}
	}
	return nil
}

// Spec returns the distribution for synthetic kinds. A discrete dataset
// without explicit values uses distgen.DefaultDiscrete.
func (d DatasetConfig) Spec() distgen.Spec {
	switch d.Kind {
	case KindDiscrete:
		if len(d.Values) == 0 && len(d.Weights) == 0 {
			return distgen.DefaultDiscrete
		}
		return distgen.Spec{Kind: distgen.KindDiscrete, Values: d.Values, Weights: d.Weights}
	default:
		return distgen.Spec{Kind: distgen.KindUniform}
	}
}

// Synthetic reports whether the dataset is generated rather than loaded.
func (d DatasetConfig) Synthetic() bool {
	return d.Kind == KindUniform || d.Kind == KindDiscrete
}
