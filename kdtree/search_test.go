package kdtree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdknn/kdtree"
	"github.com/katalvlaran/kdknn/record"
)

// bruteDistances returns the k smallest squared distances by full scan.
func bruteDistances(rs []rec, q []float64, k int) []float64 {
	d := make([]float64, len(rs))
	for i := range rs {
		d[i] = kdtree.SquaredDistance(q, rs[i].Features)
	}
	sort.Float64s(d)
	if k > len(d) {
		k = len(d)
	}

	return d[:k]
}

// TestNearest_EndToEnd is the three-point scenario from the package contract.
func TestNearest_EndToEnd(t *testing.T) {
	tree, err := kdtree.Build([]rec{
		{Features: []float64{0, 0}, Label: "a"},
		{Features: []float64{1, 1}, Label: "b"},
		{Features: []float64{5, 5}, Label: "c"},
	})
	require.NoError(t, err)

	got, err := tree.Nearest([]float64{0.9, 0.9}, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"a", "b"}, record.Labels(got))
	assert.Equal(t, "b", got[0].Label, "results are nearest first")
}

// TestNearest_Errors covers the empty tree, negative k and query length.
func TestNearest_Errors(t *testing.T) {
	empty, err := kdtree.Build[float64, string](nil)
	require.NoError(t, err)
	_, err = empty.Nearest([]float64{0, 0}, 1)
	assert.ErrorIs(t, err, kdtree.ErrEmptyStructure)

	var zero kdtree.Tree[float64, string]
	_, err = zero.Nearest([]float64{0}, 1)
	assert.ErrorIs(t, err, kdtree.ErrEmptyStructure, "zero value tree is empty")

	tree, err := kdtree.Build([]rec{{Features: []float64{1, 2}, Label: "a"}})
	require.NoError(t, err)

	_, err = tree.Nearest([]float64{1, 2}, -1)
	assert.ErrorIs(t, err, kdtree.ErrInvalidK)

	_, err = tree.Nearest([]float64{1, 2, 3}, 1)
	assert.ErrorIs(t, err, kdtree.ErrDimensionMismatch)
}

// TestNearest_ZeroK returns an empty, non-nil result.
func TestNearest_ZeroK(t *testing.T) {
	tree, err := kdtree.Build([]rec{{Features: []float64{1}, Label: "a"}})
	require.NoError(t, err)

	got, err := tree.Nearest([]float64{0}, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// TestSearch_MatchesBruteForce cross-checks branch and bound against a full
// scan on random data of varying size and dimension.
func TestSearch_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for _, dim := range []int{1, 2, 3, 5, 8} {
		for _, n := range []int{1, 2, 17, 128, 600} {
			rs := randomRecords(rng, n, dim)
			tree, err := kdtree.Build(rs)
			require.NoError(t, err)

			for q := 0; q < 20; q++ {
				query := make([]float64, dim)
				for j := range query {
					query[j] = rng.Float64()*240 - 120
				}
				k := 1 + rng.Intn(n+3)

				hits, err := tree.Search(query, k)
				require.NoError(t, err)
				require.Len(t, hits, min(k, n), "dim=%d n=%d k=%d", dim, n, k)

				want := bruteDistances(rs, query, k)
				got := make([]float64, len(hits))
				for i, h := range hits {
					got[i] = h.DistSq
					assert.Equal(t, kdtree.SquaredDistance(query, h.Record.Features), h.DistSq)
				}
				assert.Equal(t, want, got, "dim=%d n=%d k=%d", dim, n, k)
			}
		}
	}
}

// TestSearch_IntegerTies uses a lattice with many equal distances; the
// distance multiset must still match the scan even though tie order is free.
func TestSearch_IntegerTies(t *testing.T) {
	var rs []record.Record[int, int]
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			rs = append(rs, record.Record[int, int]{Features: []int{x, y}, Label: x*6 + y})
		}
	}
	tree, err := kdtree.Build(rs)
	require.NoError(t, err)

	hits, err := tree.Search([]int{2, 2}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 5)
	assert.Equal(t, 0.0, hits[0].DistSq)
	assert.Equal(t, 14, hits[0].Record.Label)
	for _, h := range hits[1:] {
		assert.Equal(t, 1.0, h.DistSq, "the four lattice neighbours at distance 1")
	}
}

// TestSearch_UnsignedFeatures guards the float conversion of axis differences.
func TestSearch_UnsignedFeatures(t *testing.T) {
	rs := []record.Record[uint8, string]{
		{Features: []uint8{0}, Label: "low"},
		{Features: []uint8{200}, Label: "high"},
		{Features: []uint8{100}, Label: "mid"},
	}
	tree, err := kdtree.Build(rs)
	require.NoError(t, err)

	got, err := tree.Nearest([]uint8{10}, 1)
	require.NoError(t, err)
	assert.Equal(t, "low", got[0].Label)
}

func TestSquaredDistance(t *testing.T) {
	assert.Equal(t, 25.0, kdtree.SquaredDistance([]float64{0, 0}, []float64{3, 4}))
	assert.Equal(t, 0.0, kdtree.SquaredDistance([]int{}, []int{}))
}
