package scenario

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/eunmann/sort-eval/internal/logctx"
	"github.com/eunmann/sort-eval/pkg/dataset"
	"github.com/eunmann/sort-eval/pkg/distgen"
	"github.com/eunmann/sort-eval/pkg/harness"
	"github.com/eunmann/sort-eval/pkg/hostinfo"
	"github.com/eunmann/sort-eval/pkg/logging"
	"github.com/eunmann/sort-eval/pkg/report"
	"github.com/eunmann/sort-eval/pkg/sortedness"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultPrefetchConcurrency bounds parallel dataset downloads.
const DefaultPrefetchConcurrency = 4

// Runner turns scenarios into charts. Loaded datasets are cached for the
// lifetime of the runner.
type Runner struct {
	harness     *harness.Harness
	loader      *dataset.Loader
	sizes       []int
	seed        int64
	runID       string
	concurrency int

	mu    sync.Mutex
	cache map[string][]int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithSeed makes synthetic inputs reproducible. Zero seeds from the clock.
func WithSeed(seed int64) RunnerOption {
	return func(r *Runner) { r.seed = seed }
}

// WithRunID overrides the generated run id.
func WithRunID(id string) RunnerOption {
	return func(r *Runner) { r.runID = id }
}

// WithLoader sets the dataset loader.
func WithLoader(l *dataset.Loader) RunnerOption {
	return func(r *Runner) { r.loader = l }
}

// WithPrefetchConcurrency bounds parallel dataset loads.
func WithPrefetchConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRunner creates a runner measuring the given sizes.
func NewRunner(h *harness.Harness, sizes []int, opts ...RunnerOption) *Runner {
	r := &Runner{
		harness:     h,
		sizes:       sizes,
		runID:       uuid.NewString(),
		concurrency: DefaultPrefetchConcurrency,
		cache:       make(map[string][]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.loader == nil {
		r.loader = dataset.NewLoader()
	}
	return r
}

// RunID returns the id stamped on logs and reports.
func (r *Runner) RunID() string {
	return r.runID
}

func (r *Runner) maxSize() int {
	m := 0
	for _, s := range r.sizes {
		m = max(m, s)
	}
	return m
}

// Prefetch loads every non-synthetic dataset concurrently. All loads run
// to completion; the first failure is returned and the rest are logged.
// Datasets that failed are retried, and fail again, when a scenario needs
// them.
func (r *Runner) Prefetch(ctx context.Context, datasets []Dataset) error {
	log := logctx.FromContext(ctx)

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	seen := make(map[string]bool)
	for _, d := range datasets {
		if d.Synthetic() || seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		g.Go(func() error {
			if _, err := r.values(ctx, d); err != nil {
				log.Warn().Err(err).Str("dataset", d.Name).Msg("dataset prefetch failed")
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// values returns the cached column for d, loading it on first use.
func (r *Runner) values(ctx context.Context, d Dataset) ([]int, error) {
	r.mu.Lock()
	v, ok := r.cache[d.Name]
	r.mu.Unlock()
	if ok {
		return v, nil
	}

	src := d.Source
	if src.Name == "" {
		src.Name = d.Name
	}
	if src.Limit == 0 {
		src.Limit = r.maxSize()
	}

	v, err := r.loader.Load(ctx, src)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[d.Name] = v
	r.mu.Unlock()
	return v, nil
}

// generator returns the random source for one scenario. With a fixed seed,
// each scenario gets its own stream so results do not depend on which
// other scenarios ran first.
func (r *Runner) generator(s Scenario) *distgen.Generator {
	if r.seed == 0 {
		return distgen.NewTimeSeeded()
	}
	h := fnv.New64a()
	h.Write([]byte(s.ID()))
	return distgen.NewSeeded(r.seed ^ int64(h.Sum64()))
}

// inputs builds one sequence per configured size.
func (r *Runner) inputs(ctx context.Context, s Scenario) ([][]int, error) {
	out := make([][]int, len(r.sizes))

	if s.Dataset.Synthetic() {
		gen := r.generator(s)
		for i, n := range r.sizes {
			in, err := gen.Generate(*s.Dataset.Spec, n)
			if err != nil {
				return nil, err
			}
			out[i] = in
		}
		return out, nil
	}

	values, err := r.values(ctx, s.Dataset)
	if err != nil {
		return nil, err
	}
	for i, n := range r.sizes {
		in, err := distgen.FromDataset(values, n)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", s.Dataset.Name, err)
		}
		out[i] = in
	}
	return out, nil
}

// xValues computes the x-axis for the inputs.
func xValues(axis Axis, inputs [][]int) []int64 {
	xs := make([]int64, len(inputs))
	for i, in := range inputs {
		if axis == BySortedness {
			xs[i] = sortedness.Count(in)
		} else {
			xs[i] = int64(len(in))
		}
	}
	return xs
}

// Run measures one scenario and returns its chart.
func (r *Runner) Run(ctx context.Context, s Scenario) (*report.Chart, error) {
	ctx = logctx.WithScenario(ctx, s.ID())

	inputs, err := r.inputs(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID(), err)
	}
	xs := xValues(s.Axis, inputs)

	series, err := r.harness.Run(ctx, s.Metric, inputs)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID(), err)
	}

	chart := &report.Chart{
		Scenario: s.ID(),
		Title:    s.ChartTitle(),
		Subtitle: s.Dataset.Title,
		XLabel:   s.Axis.Label(),
		YLabel:   s.Metric.Label(),
		Unit:     s.Metric.Unit(),
		X:        xs,
		Series:   series,
	}
	if err := chart.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.ID(), err)
	}
	return chart, nil
}

// RunAll runs every scenario, continuing past failures. The report holds
// the charts that succeeded; the error joins every failure.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) (*report.Report, error) {
	ctx = logctx.WithRunID(ctx, r.runID)
	log := logctx.FromContext(ctx)
	host := hostinfo.Capture()

	log.Info().
		Object("host", host).
		Int("scenarios", len(scenarios)).
		Int("trials", r.harness.Trials()).
		Ints("sizes", r.sizes).
		Msg("benchmark run started")

	var datasets []Dataset
	for _, s := range scenarios {
		datasets = append(datasets, s.Dataset)
	}
	if err := r.Prefetch(ctx, datasets); err != nil {
		log.Warn().Err(err).Msg("continuing without some datasets")
	}

	rep := &report.Report{
		RunID:       r.runID,
		GeneratedAt: time.Now().UTC(),
		Host:        host,
		Trials:      r.harness.Trials(),
	}

	tracker := logging.NewProgressTracker("benchmark", int64(len(scenarios)), log)
	var errs []error
	for i, s := range scenarios {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		logging.ScenarioStarted(log, "benchmark", s.ID(), int64(i), int64(len(scenarios)))
		start := time.Now()

		chart, err := r.Run(ctx, s)
		if err != nil {
			tracker.RecordFailure()
			log.Error().Err(err).Str(logctx.FieldScenario, s.ID()).Msg("scenario failed")
			errs = append(errs, err)
			continue
		}

		elapsed := time.Since(start)
		tracker.RecordCompletion(elapsed)
		rep.Charts = append(rep.Charts, chart)

		logging.ScenarioComplete(log, "benchmark", elapsed).
			Str(logctx.FieldScenario, s.ID()).
			Str("metric", s.Metric.String()).
			Str("axis", s.Axis.String()).
			Int("points", len(chart.X)).
			ProgressFromTracker(tracker).
			Log("scenario complete")
	}

	return rep, errors.Join(errs...)
}
