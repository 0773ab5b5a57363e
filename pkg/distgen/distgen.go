// Package distgen produces integer sequences for the benchmark: uniform
// random values, draws from a discrete weighted distribution, and size
// adaptation of an externally loaded dataset.
//
// A Generator owns its random source and is not safe for concurrent use.
package distgen

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Kind names a distribution family.
type Kind string

// Supported distribution kinds.
const (
	KindUniform  Kind = "uniform"
	KindDiscrete Kind = "discrete"
)

// Spec describes a distribution. Values and Weights are only used by
// KindDiscrete.
type Spec struct {
	Kind    Kind      `yaml:"kind" json:"kind"`
	Values  []int     `yaml:"values,omitempty" json:"values,omitempty"`
	Weights []float64 `yaml:"weights,omitempty" json:"weights,omitempty"`
}

// DefaultDiscrete is the four-point distribution used for the discrete
// dataset: 1 and 1000 with probability 0.3, 10 and 100 with 0.2.
var DefaultDiscrete = Spec{
	Kind:    KindDiscrete,
	Values:  []int{1, 10, 100, 1000},
	Weights: []float64{0.3, 0.2, 0.2, 0.3},
}

const weightTolerance = 1e-9

// Validate checks the distribution for internal consistency.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindUniform:
		return nil
	case KindDiscrete:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, s.Kind)
	}

	if len(s.Values) == 0 {
		return fmt.Errorf("%w: no values", ErrInvalidSpec)
	}
	if len(s.Values) != len(s.Weights) {
		return fmt.Errorf("%w: %d values but %d weights", ErrInvalidSpec, len(s.Values), len(s.Weights))
	}

	var sum float64
	for i, w := range s.Weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: weight %d is %v", ErrInvalidSpec, i, w)
		}
		sum += w
	}
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %v, want 1", ErrInvalidSpec, sum)
	}
	return nil
}

// Generator draws sequences from an injected random source.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator over rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a reproducible generator.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// NewTimeSeeded creates a generator seeded from the wall clock.
func NewTimeSeeded() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// Uniform returns size values spread over the full signed 32-bit range.
func (g *Generator) Uniform(size int) []int {
	if size <= 0 {
		return []int{}
	}
	out := make([]int, size)
	for i := range out {
		out[i] = int(int32(g.rng.Uint32()))
	}
	return out
}

// Discrete returns size draws from DefaultDiscrete.
func (g *Generator) Discrete(size int) []int {
	out, _ := g.Weighted(DefaultDiscrete, size)
	return out
}

// Weighted returns size draws from a discrete spec.
func (g *Generator) Weighted(spec Spec, size int) ([]int, error) {
	if spec.Kind != KindDiscrete {
		return nil, fmt.Errorf("%w: weighted sampling needs kind %q, got %q", ErrInvalidSpec, KindDiscrete, spec.Kind)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	cumulative := make([]float64, len(spec.Weights))
	var acc float64
	for i, w := range spec.Weights {
		acc += w
		cumulative[i] = acc
	}

	out := make([]int, size)
	for i := range out {
		out[i] = spec.Values[pick(cumulative, g.rng.Float64())]
	}
	return out, nil
}

// pick returns the first index whose cumulative weight exceeds r. Rounding
// can leave the total a hair under 1, so the last index catches the rest.
func pick(cumulative []float64, r float64) int {
	for i, c := range cumulative {
		if r < c {
			return i
		}
	}
	return len(cumulative) - 1
}

// Generate dispatches on spec.Kind.
func (g *Generator) Generate(spec Spec, size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	switch spec.Kind {
	case KindUniform:
		return g.Uniform(size), nil
	case KindDiscrete:
		return g.Weighted(spec, size)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidSpec, spec.Kind)
	}
}

// FromDataset returns a copy of the first size values.
func FromDataset(values []int, size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if len(values) < size {
		return nil, fmt.Errorf("%w: need %d values, dataset has %d", ErrInputUnderflow, size, len(values))
	}
	out := make([]int, size)
	copy(out, values[:size])
	return out, nil
}
