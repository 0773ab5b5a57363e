// Package harness runs every sorting algorithm over the same inputs for a
// fixed number of trials and averages each algorithm's measurements into a
// Series.
//
// Trials, algorithms and inputs run sequentially on the calling goroutine.
// Each trial sorts a fresh copy of the input, so no trial ever sees data
// sorted by an earlier one.
package harness

import (
	"context"
	"slices"
	"time"

	"github.com/eunmann/sort-eval/internal/logctx"
	"github.com/eunmann/sort-eval/pkg/humanfmt"
	"github.com/eunmann/sort-eval/pkg/logging"
	"github.com/eunmann/sort-eval/pkg/memprobe"
	"github.com/eunmann/sort-eval/pkg/sortalgo"
	"github.com/rs/zerolog"
)

// DefaultTrials is the number of repetitions averaged per algorithm.
const DefaultTrials = 5

// Clock is the time source bracketing each sort.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Harness measures algorithms. It holds no per-run state and may be reused.
type Harness struct {
	algorithms    []sortalgo.Algorithm
	trials        int
	clock         Clock
	sampler       memprobe.Sampler
	gcBeforeTrial bool
	metrics       *PromMetrics
}

// Option configures a Harness.
type Option func(*Harness)

// WithTrials sets the repetitions per algorithm. Values below 1 are ignored.
func WithTrials(n int) Option {
	return func(h *Harness) {
		if n > 0 {
			h.trials = n
		}
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithSampler replaces the runtime heap sampler.
func WithSampler(s memprobe.Sampler) Option {
	return func(h *Harness) { h.sampler = s }
}

// WithAlgorithms restricts or reorders the algorithms measured.
func WithAlgorithms(algs ...sortalgo.Algorithm) Option {
	return func(h *Harness) { h.algorithms = algs }
}

// WithGCBeforeTrial forces a collection before every memory trial.
func WithGCBeforeTrial(on bool) Option {
	return func(h *Harness) { h.gcBeforeTrial = on }
}

// WithMetrics records every trial in m.
func WithMetrics(m *PromMetrics) Option {
	return func(h *Harness) { h.metrics = m }
}

// New creates a harness over sortalgo.All with DefaultTrials.
func New(opts ...Option) *Harness {
	h := &Harness{
		algorithms:    sortalgo.All(),
		trials:        DefaultTrials,
		clock:         systemClock{},
		sampler:       memprobe.RuntimeSampler{},
		gcBeforeTrial: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Trials returns the configured repetitions per algorithm.
func (h *Harness) Trials() int {
	return h.trials
}

// Algorithms returns the algorithms in measurement order.
func (h *Harness) Algorithms() []sortalgo.Algorithm {
	return h.algorithms
}

// trial is one raw measurement.
type trial struct {
	value   int64
	elapsed time.Duration
}

// RunSimulation measures every algorithm on input and appends one averaged
// value per algorithm to series. input is never modified. The context is
// checked between trials; a sort in progress is not interrupted.
func (h *Harness) RunSimulation(ctx context.Context, input []int, metric Metric, series *Series) error {
	start := h.clock.Now()
	log := logctx.FromContext(ctx)
	h.metrics.observeInput(metric, len(input))

	for _, alg := range h.algorithms {
		samples := make([]int64, 0, h.trials)
		for range h.trials {
			if err := ctx.Err(); err != nil {
				return err
			}

			t := h.measure(log, alg, input, metric)
			h.metrics.observeTrial(string(alg.Name()), metric, t)
			samples = append(samples, t.value)
		}

		avg := average(samples)
		series.Append(alg.Name(), avg)

		if e := log.Debug(); e.Enabled() {
			sum := Summarize(samples)
			e.Str(logctx.FieldAlgorithm, string(alg.Name())).
				Str("metric", metric.String()).
				Int(logctx.FieldSize, len(input)).
				Int64("avg", avg).
				Str("avg_h", Describe(metric, avg)).
				Float64("mean", sum.Mean).
				Float64("stddev", sum.StdDev).
				Float64("min", sum.Min).
				Float64("max", sum.Max).
				Msg("algorithm measured")
		}
	}

	logging.SeriesComplete(log, "benchmark", h.clock.Now().Sub(start)).
		Str("metric", metric.String()).
		Int(logctx.FieldSize, len(input)).
		Int("algorithms", len(h.algorithms)).
		Int("trials", h.trials).
		LogDebug("series point measured")

	return nil
}

// Run measures every input in order and returns the aligned series.
func (h *Harness) Run(ctx context.Context, metric Metric, inputs [][]int) (*Series, error) {
	series := NewSeries()
	for _, input := range inputs {
		if err := h.RunSimulation(ctx, input, metric, series); err != nil {
			return nil, err
		}
	}
	if err := series.Validate(len(inputs)); err != nil {
		return nil, err
	}
	return series, nil
}

// measure copies input and performs one timed or heap-sampled sort.
func (h *Harness) measure(log zerolog.Logger, alg sortalgo.Algorithm, input []int, metric Metric) trial {
	work := slices.Clone(input)

	switch metric {
	case Memory:
		if h.gcBeforeTrial {
			memprobe.ForceGC(log)
		}
		before := h.sampler.HeapInUse()
		alg.Sort(work)
		after := h.sampler.HeapInUse()
		return trial{value: memprobe.DeltaKB(before, after)}

	default:
		begin := h.clock.Now()
		alg.Sort(work)
		elapsed := h.clock.Now().Sub(begin)
		return trial{value: elapsed.Milliseconds(), elapsed: elapsed}
	}
}

// average is the truncating integer mean.
func average(samples []int64) int64 {
	if len(samples) == 0 {
		return 0
	}
	var sum int64
	for _, s := range samples {
		sum += s
	}
	return sum / int64(len(samples))
}

// Describe formats an averaged value for humans.
func Describe(metric Metric, v int64) string {
	if metric == Memory {
		return humanfmt.KiloBytes(v)
	}
	return humanfmt.Millis(v)
}
