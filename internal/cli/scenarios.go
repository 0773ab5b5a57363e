package cli

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/eunmann/sort-eval/pkg/config"
	"github.com/eunmann/sort-eval/pkg/dataset"
	"github.com/eunmann/sort-eval/pkg/harness"
	"github.com/eunmann/sort-eval/pkg/scenario"
	"github.com/spf13/cobra"
)

func newScenariosCmd(g *globalOptions) *cobra.Command {
	var patterns []string

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the scenarios the config expands to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			scenarios, err := selectScenarios(cfg, patterns)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCHART\tDATASET")
			for _, s := range scenarios {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID(), s.ChartTitle(), s.Dataset.Title)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "scenario", "s", nil, "scenario id or glob to list (repeatable)")
	return cmd
}

// datasetsFromConfig numbers datasets in config order.
func datasetsFromConfig(cfg config.Config) []scenario.Dataset {
	out := make([]scenario.Dataset, 0, len(cfg.Datasets))
	for i, d := range cfg.Datasets {
		ds := scenario.Dataset{
			Number: i + 1,
			Name:   d.Name,
			Title:  d.Title,
		}
		if d.Synthetic() {
			spec := d.Spec()
			ds.Spec = &spec
		} else {
			format := dataset.FormatCSV
			if d.Kind == config.KindParquet {
				format = dataset.FormatParquet
			}
			ds.Source = dataset.Source{
				Name:       d.Name,
				Path:       d.Path,
				Format:     format,
				Column:     d.Column,
				ColumnName: d.ColumnName,
				Header:     d.Header,
			}
		}
		out = append(out, ds)
	}
	return out
}

// selectScenarios builds the matrix from cfg and applies the config and
// command-line filters.
func selectScenarios(cfg config.Config, patterns []string) ([]scenario.Scenario, error) {
	datasets := datasetsFromConfig(cfg)
	if len(cfg.Scenarios.Datasets) > 0 {
		datasets = slices.DeleteFunc(datasets, func(d scenario.Dataset) bool {
			return !slices.Contains(cfg.Scenarios.Datasets, d.Name)
		})
	}

	metrics := harness.Metrics()
	if len(cfg.Scenarios.Metrics) > 0 {
		metrics = metrics[:0:0]
		for _, m := range cfg.Scenarios.Metrics {
			parsed, err := harness.ParseMetric(m)
			if err != nil {
				return nil, err
			}
			metrics = append(metrics, parsed)
		}
	}

	axes := scenario.Axes()
	if len(cfg.Scenarios.Axes) > 0 {
		axes = axes[:0:0]
		for _, a := range cfg.Scenarios.Axes {
			parsed, err := scenario.ParseAxis(a)
			if err != nil {
				return nil, err
			}
			axes = append(axes, parsed)
		}
	}

	return scenario.Select(scenario.Matrix(datasets, metrics, axes), patterns)
}
