package kdtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdknn/kdtree"
	"github.com/katalvlaran/kdknn/record"
)

type rec = record.Record[float64, string]

// randomRecords returns n records of the given dimension with labels drawn
// from a small alphabet so that label tallies are meaningful.
func randomRecords(rng *rand.Rand, n, dim int) []rec {
	labels := []string{"a", "b", "c", "d"}
	out := make([]rec, n)
	for i := range out {
		f := make([]float64, dim)
		for j := range f {
			f[j] = rng.Float64()*200 - 100
		}
		out[i] = rec{Features: f, Label: labels[rng.Intn(len(labels))]}
	}

	return out
}

// TestBuild_Empty verifies an empty batch yields an empty tree, not an error.
func TestBuild_Empty(t *testing.T) {
	tree, err := kdtree.Build[float64, string](nil)
	require.NoError(t, err)
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Height())

	fixed, err := kdtree.Build[float64, string](nil, kdtree.WithDim(3))
	require.NoError(t, err)
	assert.Equal(t, 3, fixed.Dim(), "WithDim is kept even when nothing is stored")
}

// TestBuild_DimensionErrors covers ragged input and zero-length vectors.
func TestBuild_DimensionErrors(t *testing.T) {
	ragged := []rec{
		{Features: []float64{1, 2}, Label: "a"},
		{Features: []float64{1, 2, 3}, Label: "b"},
	}
	_, err := kdtree.Build(ragged)
	assert.ErrorIs(t, err, kdtree.ErrDimensionMismatch)

	_, err = kdtree.Build([]rec{{Features: []float64{}, Label: "a"}})
	assert.ErrorIs(t, err, kdtree.ErrBadDimension)

	_, err = kdtree.Build([]rec{{Features: []float64{1, 2}, Label: "a"}}, kdtree.WithDim(3))
	assert.ErrorIs(t, err, kdtree.ErrDimensionMismatch, "WithDim overrides inference")
}

// TestBuild_DoesNotMutateInput ensures the caller's slice order and feature
// values survive construction.
func TestBuild_DoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := randomRecords(rng, 50, 3)
	snapshot := record.CloneAll(in)

	tree, err := kdtree.Build(in)
	require.NoError(t, err)
	require.Equal(t, 50, tree.Len())

	for i := range in {
		assert.True(t, in[i].Equal(snapshot[i]), "record %d changed", i)
	}

	// Mutating the input afterwards must not reach the tree.
	in[0].Features[0] = 1e9
	for _, r := range tree.Records() {
		assert.NotEqual(t, 1e9, r.Features[0])
	}
}

// TestBuild_Balanced checks the median split keeps height logarithmic.
func TestBuild_Balanced(t *testing.T) {
	cases := []struct {
		n, height int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{7, 3},
		{8, 4},
		{1000, 10},
	}
	rng := rand.New(rand.NewSource(1))
	for _, tc := range cases {
		tree, err := kdtree.Build(randomRecords(rng, tc.n, 2))
		require.NoError(t, err)
		assert.Equal(t, tc.n, tree.Len())
		assert.Equal(t, tc.height, tree.Height(), "n=%d", tc.n)
	}
}

// TestBuild_Duplicates builds from identical points and still answers queries.
func TestBuild_Duplicates(t *testing.T) {
	in := make([]rec, 257)
	for i := range in {
		in[i] = rec{Features: []float64{5, 5}, Label: "dup"}
	}
	tree, err := kdtree.Build(in)
	require.NoError(t, err)
	assert.Equal(t, 257, tree.Len())

	got, err := tree.Nearest([]float64{0, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

// TestBuild_MaxDepth verifies the depth bound fails fast.
func TestBuild_MaxDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	in := randomRecords(rng, 7, 2)

	_, err := kdtree.Build(in, kdtree.WithMaxDepth(2))
	assert.ErrorIs(t, err, kdtree.ErrDepthExceeded)

	tree, err := kdtree.Build(in, kdtree.WithMaxDepth(3))
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Height())
}

// TestOptions_Panics covers option constructor validation.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { kdtree.WithDim(0) })
	assert.Panics(t, func() { kdtree.WithMaxDepth(-1) })
	assert.NotPanics(t, func() { kdtree.WithMaxDepth(0) })
}

// TestWalk_AxisCycles checks axis = depth mod K on every node.
func TestWalk_AxisCycles(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree, err := kdtree.Build(randomRecords(rng, 100, 3))
	require.NoError(t, err)

	visited := 0
	tree.Walk(func(v kdtree.NodeView[float64, string]) bool {
		visited++
		assert.Equal(t, v.Depth%3, v.Axis)
		return true
	})
	assert.Equal(t, 100, visited)

	stopped := 0
	tree.Walk(func(kdtree.NodeView[float64, string]) bool {
		stopped++
		return stopped < 5
	})
	assert.Equal(t, 5, stopped, "Walk stops when fn returns false")
}
