package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topobench/topobench/builder"
	"github.com/topobench/topobench/digraph"
)

// TestGenerate_EdgeCountTarget checks |edges| == round(density·n·(n-1))
// across a grid of sizes and densities, in both representations.
func TestGenerate_EdgeCountTarget(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 12, 30} {
		for _, density := range []float64{0, 0.2, 0.5, 0.85, 1} {
			g, err := builder.Generate(n, density, builder.WithSeed(7))
			require.NoError(t, err)

			want := 0
			if n > 1 {
				want = int(math.Round(density * float64(n*(n-1))))
			}
			assert.Equal(t, want, g.List.EdgeCount(), "list edges for n=%d d=%v", n, density)
			assert.Equal(t, want, g.Matrix.EdgeCount(), "matrix edges for n=%d d=%v", n, density)
		}
	}
}

// TestGenerate_SimpleGraphInvariants asserts no self-loops and no duplicate
// pairs in a dense-ish sample.
func TestGenerate_SimpleGraphInvariants(t *testing.T) {
	g, err := builder.Generate(20, 0.7, builder.WithSeed(99))
	require.NoError(t, err)

	require.NoError(t, g.List.Validate())
	require.NoError(t, g.Matrix.Validate())
	for u := 0; u < g.N; u++ {
		assert.Zero(t, g.Matrix[u][u])
	}
}

// TestGenerate_RepresentationsAgree verifies both outputs encode the same
// edge set: converting the list must reproduce the matrix exactly.
func TestGenerate_RepresentationsAgree(t *testing.T) {
	g, err := builder.Generate(15, 0.3, builder.WithSeed(3), builder.WithWeights(1, 9))
	require.NoError(t, err)

	fromList, err := digraph.ListToMatrix(g.List)
	require.NoError(t, err)
	assert.Equal(t, g.Matrix, fromList)
}

// TestGenerate_Deterministic re-runs with the same seed and expects the
// identical edge set and weights.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := builder.Generate(5, 0.20, builder.WithSeed(123), builder.WithWeights(1, 10))
	require.NoError(t, err)
	second, err := builder.Generate(5, 0.20, builder.WithSeed(123), builder.WithWeights(1, 10))
	require.NoError(t, err)

	assert.Equal(t, 4, first.List.EdgeCount()) // round(0.20·5·4)
	assert.Equal(t, first.List, second.List)
	assert.Equal(t, first.Matrix, second.Matrix)
}

// TestGenerate_PercentForm: density 20 behaves exactly like 0.20.
func TestGenerate_PercentForm(t *testing.T) {
	fraction, err := builder.Generate(5, 0.20, builder.WithSeed(123))
	require.NoError(t, err)
	percent, err := builder.Generate(5, 20, builder.WithSeed(123))
	require.NoError(t, err)

	assert.Equal(t, fraction.List, percent.List)
	assert.Equal(t, fraction.Matrix, percent.Matrix)
}

// TestGenerate_WeightBounds samples every weight inside the closed range.
func TestGenerate_WeightBounds(t *testing.T) {
	g, err := builder.Generate(10, 0.5, builder.WithSeed(42), builder.WithWeights(3, 5))
	require.NoError(t, err)
	require.True(t, g.Weighted)

	for _, neighbors := range g.List {
		for _, e := range neighbors {
			assert.GreaterOrEqual(t, e.Weight, 3)
			assert.LessOrEqual(t, e.Weight, 5)
		}
	}
}

// TestGenerate_Unweighted stores DefaultWeight everywhere.
func TestGenerate_Unweighted(t *testing.T) {
	g, err := builder.Generate(6, 1.0, builder.WithSeed(1))
	require.NoError(t, err)
	require.False(t, g.Weighted)

	for _, row := range g.Matrix {
		for _, cell := range row {
			if cell != 0 {
				assert.Equal(t, digraph.DefaultWeight, cell)
			}
		}
	}
}

// TestGenerate_FullDensity fills every admissible cell.
func TestGenerate_FullDensity(t *testing.T) {
	g, err := builder.Generate(7, 1.0, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, 7*6, g.Matrix.EdgeCount())
}

// TestGenerate_InvalidParameters covers the fail-fast family.
func TestGenerate_InvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		density float64
		opts    []builder.Option
		want    error
	}{
		{name: "negative n", n: -1, density: 0.5, want: builder.ErrBadVertexCount},
		{name: "negative density", n: 5, density: -0.1, want: builder.ErrInvalidDensity},
		{name: "percent above 100", n: 5, density: 101, want: builder.ErrInvalidDensity},
		{
			name: "min above max", n: 5, density: 0.5,
			opts: []builder.Option{builder.WithWeights(9, 2)},
			want: builder.ErrInvalidWeightRange,
		},
		{
			name: "zero min weight", n: 5, density: 0.5,
			opts: []builder.Option{builder.WithWeights(0, 4)},
			want: builder.ErrInvalidWeightRange,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Generate(tc.n, tc.density, append(tc.opts, builder.WithSeed(1))...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestGenerate_TrivialSizes: n=0 and n=1 produce empty edge sets even at
// density 1.
func TestGenerate_TrivialSizes(t *testing.T) {
	for _, n := range []int{0, 1} {
		g, err := builder.Generate(n, 1.0, builder.WithSeed(1))
		require.NoError(t, err)
		assert.Equal(t, n, g.N)
		assert.Zero(t, g.List.EdgeCount())
		assert.Zero(t, g.Matrix.EdgeCount())
	}
}

// TestWithRand_NilPanics: option constructors panic on programmer error.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
