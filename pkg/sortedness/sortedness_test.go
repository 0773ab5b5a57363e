package sortedness

import (
	"fmt"
	"slices"
	"testing"

	"github.com/eunmann/sort-eval/pkg/benchutil"
	"github.com/stretchr/testify/assert"
)

func TestInversions(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  int64
	}{
		{"nil", nil, 0},
		{"empty", []int{}, 0},
		{"single", []int{42}, 0},
		{"sorted", []int{1, 2, 3}, 0},
		{"one_rotation", []int{3, 1, 2}, 2},
		{"reversed", []int{3, 2, 1}, 3},
		{"equal_values", []int{5, 5, 5, 5}, 0},
		{"duplicates", []int{2, 1, 2, 1}, 3},
		{"example", []int{5, 3, 8, 1, 9, 2}, 8},
		{"negatives", []int{-1, -5, 0, -3}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Naive(tt.input), "Naive")
			assert.Equal(t, tt.want, Count(tt.input), "Count")
		})
	}
}

func TestCountMatchesNaive(t *testing.T) {
	gen := benchutil.NewGenerator(benchutil.BenchmarkSeed)
	for _, shape := range benchutil.Shapes {
		for _, n := range []int{2, 3, 10, 99, 500} {
			input, err := gen.Shape(shape, n)
			if err != nil {
				t.Fatal(err)
			}
			t.Run(fmt.Sprintf("%s/n=%d", shape, n), func(t *testing.T) {
				assert.Equal(t, Naive(input), Count(input))
			})
		}
	}
}

func TestCountBounds(t *testing.T) {
	for _, n := range []int{0, 1, 2, 100, 10000} {
		assert.Equal(t, int64(0), Count(benchutil.Ascending(n)), "ascending n=%d", n)
		assert.Equal(t, Max(n), Count(benchutil.Descending(n)), "descending n=%d", n)
	}
}

func TestCountLeavesInputUntouched(t *testing.T) {
	input := []int{9, 4, 7, 1, 3}
	orig := slices.Clone(input)
	Count(input)
	assert.Equal(t, orig, input)
}

func TestMax(t *testing.T) {
	assert.Equal(t, int64(0), Max(1))
	assert.Equal(t, int64(3), Max(3))
	assert.Equal(t, int64(49995000), Max(10000))
}
