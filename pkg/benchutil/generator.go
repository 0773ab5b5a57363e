// Package benchutil provides synthetic input generation for sort benchmarks
// and tests.
package benchutil

import (
	"fmt"
	"math/rand"
)

// Generator produces reproducible integer sequences of a given shape.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a new data generator. A seed of 0 uses BenchmarkSeed.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = BenchmarkSeed
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Shape returns n values arranged according to one of Shapes.
func (g *Generator) Shape(shape string, n int) ([]int, error) {
	switch shape {
	case "random":
		return g.Random(n), nil
	case "sorted":
		return Ascending(n), nil
	case "reversed":
		return Descending(n), nil
	case "nearly_sorted":
		return g.NearlySorted(n, n/100), nil
	case "few_unique":
		return g.FewUnique(n), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}

// Random returns n values uniformly drawn from [0, 1<<31).
func (g *Generator) Random(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = int(g.rng.Int31())
	}
	return out
}

// NearlySorted returns 0..n-1 ascending with the given number of random
// pairwise swaps applied.
func (g *Generator) NearlySorted(n, swaps int) []int {
	out := Ascending(n)
	if n < 2 {
		return out
	}
	for range swaps {
		i, j := g.rng.Intn(n), g.rng.Intn(n)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FewUnique returns n values drawn from {1, 10, 100, 1000}.
func (g *Generator) FewUnique(n int) []int {
	keys := [...]int{1, 10, 100, 1000}
	out := make([]int, n)
	for i := range out {
		out[i] = keys[g.rng.Intn(len(keys))]
	}
	return out
}

// Ascending returns 0..n-1.
func Ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Descending returns n-1..0.
func Descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}
	return out
}
