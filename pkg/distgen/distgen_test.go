package distgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniform(t *testing.T) {
	g := NewSeeded(1)
	got := g.Uniform(10000)
	require.Len(t, got, 10000)

	var neg, pos int
	for _, v := range got {
		require.GreaterOrEqual(t, v, math.MinInt32)
		require.LessOrEqual(t, v, math.MaxInt32)
		if v < 0 {
			neg++
		} else {
			pos++
		}
	}
	// Full signed range: both halves are populated.
	assert.Greater(t, neg, 4000)
	assert.Greater(t, pos, 4000)

	assert.Empty(t, g.Uniform(0))
	assert.Empty(t, g.Uniform(-3))
}

func TestUniformReproducible(t *testing.T) {
	assert.Equal(t, NewSeeded(99).Uniform(50), NewSeeded(99).Uniform(50))
	assert.NotEqual(t, NewSeeded(99).Uniform(50), NewSeeded(100).Uniform(50))
}

func TestDiscreteFrequencies(t *testing.T) {
	const n = 100000
	got := NewSeeded(42).Discrete(n)
	require.Len(t, got, n)

	counts := map[int]int{}
	for _, v := range got {
		counts[v]++
	}
	require.Len(t, counts, 4, "unexpected values: %v", counts)

	want := map[int]float64{1: 0.3, 10: 0.2, 100: 0.2, 1000: 0.3}
	for v, p := range want {
		freq := float64(counts[v]) / n
		assert.InDelta(t, p, freq, 0.02, "frequency of %d", v)
	}
}

func TestWeightedCustomSpec(t *testing.T) {
	spec := Spec{Kind: KindDiscrete, Values: []int{-7, 7}, Weights: []float64{0, 1}}
	got, err := NewSeeded(3).Weighted(spec, 200)
	require.NoError(t, err)
	for _, v := range got {
		require.Equal(t, 7, v)
	}
}

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{"uniform", Spec{Kind: KindUniform}, false},
		{"default_discrete", DefaultDiscrete, false},
		{"unknown_kind", Spec{Kind: "gaussian"}, true},
		{"no_values", Spec{Kind: KindDiscrete}, true},
		{"length_mismatch", Spec{Kind: KindDiscrete, Values: []int{1, 2}, Weights: []float64{1}}, true},
		{"negative_weight", Spec{Kind: KindDiscrete, Values: []int{1, 2}, Weights: []float64{1.5, -0.5}}, true},
		{"sum_short", Spec{Kind: KindDiscrete, Values: []int{1, 2}, Weights: []float64{0.5, 0.4}}, true},
		{"sum_float_noise", Spec{Kind: KindDiscrete, Values: []int{1, 2, 3}, Weights: []float64{0.1, 0.2, 0.7}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSpec)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	g := NewSeeded(5)

	u, err := g.Generate(Spec{Kind: KindUniform}, 10)
	require.NoError(t, err)
	assert.Len(t, u, 10)

	d, err := g.Generate(DefaultDiscrete, 10)
	require.NoError(t, err)
	assert.Len(t, d, 10)

	_, err = g.Generate(Spec{Kind: "zipf"}, 10)
	assert.ErrorIs(t, err, ErrInvalidSpec)

	_, err = g.Generate(DefaultDiscrete, -1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestFromDataset(t *testing.T) {
	values := []int{10, 20, 30, 40}

	got, err := FromDataset(values, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)

	got[0] = 99
	assert.Equal(t, 10, values[0], "FromDataset must copy")

	got, err = FromDataset(values, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = FromDataset(values, 4)
	require.NoError(t, err)
	assert.Equal(t, values, got)

	_, err = FromDataset(values, 5)
	assert.ErrorIs(t, err, ErrInputUnderflow)

	_, err = FromDataset(values, -1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestPick(t *testing.T) {
	cum := []float64{0.3, 0.5, 0.7, 0.9999999999}
	assert.Equal(t, 0, pick(cum, 0))
	assert.Equal(t, 1, pick(cum, 0.3))
	assert.Equal(t, 3, pick(cum, 0.99999999999))
}
