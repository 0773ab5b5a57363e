package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/eunmann/sort-eval/internal/logctx"
	"github.com/eunmann/sort-eval/pkg/config"
	"github.com/eunmann/sort-eval/pkg/dataset"
	"github.com/eunmann/sort-eval/pkg/harness"
	"github.com/eunmann/sort-eval/pkg/logging"
	"github.com/eunmann/sort-eval/pkg/report"
	"github.com/eunmann/sort-eval/pkg/scenario"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type runOptions struct {
	scenarios   []string
	formats     []string
	metricsFile string
	outputDir   string
}

func newRunCmd(g *globalOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark scenarios and render the charts",
		Example: `  sorteval run
  sorteval run --scenario 'uniform/*' --format table --format json
  sorteval run -c sorteval.yaml --metrics-file results/metrics.prom`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runBenchmark(ctx, cmd, cfg, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.scenarios, "scenario", "s", nil, "scenario id or glob to run (repeatable)")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "output format: table, json, parquet (repeatable)")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "directory for report files")
	return cmd
}

func runBenchmark(ctx context.Context, cmd *cobra.Command, cfg config.Config, opts *runOptions) error {
	if len(opts.formats) > 0 {
		cfg.Output.Formats = opts.formats
	}
	if opts.outputDir != "" {
		cfg.Output.Dir = opts.outputDir
	}
	if opts.metricsFile != "" {
		cfg.MetricsFile = opts.metricsFile
	}

	formats, err := parseFormats(cfg.Output.Formats)
	if err != nil {
		return err
	}
	scenarios, err := selectScenarios(cfg, opts.scenarios)
	if err != nil {
		return err
	}

	ctx = logctx.WithLogger(ctx, logging.WithPhase("benchmark"))

	reg := prometheus.NewRegistry()
	h := harness.New(
		harness.WithTrials(cfg.Trials),
		harness.WithGCBeforeTrial(cfg.Memory.GCBeforeTrial),
		harness.WithMetrics(harness.NewPromMetrics(reg)),
	)
	loader := dataset.NewLoader(dataset.WithDownloaderConfig(dataset.DownloaderConfig{
		Concurrency: cfg.S3.Concurrency,
		PartSize:    cfg.S3.PartSize,
	}))
	runner := scenario.NewRunner(h, cfg.Sizes,
		scenario.WithSeed(cfg.Seed),
		scenario.WithLoader(loader),
	)

	rep, runErr := runner.RunAll(ctx, scenarios)

	if len(rep.Charts) > 0 {
		w := &report.Writer{
			Dir:     cfg.Output.Dir,
			Stdout:  cmd.OutOrStdout(),
			Formats: formats,
		}
		if _, err := w.Write(ctx, rep); err != nil {
			return errors.Join(runErr, err)
		}
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return errors.Join(runErr, fmt.Errorf("write metrics file: %w", err))
		}
	}

	return runErr
}

func parseFormats(names []string) ([]report.Format, error) {
	formats := make([]report.Format, 0, len(names))
	for _, n := range names {
		f, err := report.ParseFormat(n)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}
