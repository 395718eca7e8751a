package kdtree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/kdknn/kdtree"
)

// benchmarkBuild measures construction of n random records of dimension dim.
func benchmarkBuild(b *testing.B, n, dim int) {
	rs := randomRecords(rand.New(rand.NewSource(1)), n, dim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kdtree.Build(rs); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// benchmarkSearch measures k-NN queries against a prebuilt tree.
func benchmarkSearch(b *testing.B, n, dim, k int) {
	rng := rand.New(rand.NewSource(2))
	tree, err := kdtree.Build(randomRecords(rng, n, dim))
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}
	queries := randomRecords(rng, 256, dim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.Search(queries[i%len(queries)].Features, k); err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

func BenchmarkBuild_10k_4D(b *testing.B) { benchmarkBuild(b, 10_000, 4) }
func BenchmarkBuild_100k_4D(b *testing.B) { benchmarkBuild(b, 100_000, 4) }

func BenchmarkSearch_10k_4D_k1(b *testing.B) { benchmarkSearch(b, 10_000, 4, 1) }
func BenchmarkSearch_10k_4D_k10(b *testing.B) { benchmarkSearch(b, 10_000, 4, 10) }
func BenchmarkSearch_10k_16D_k10(b *testing.B) { benchmarkSearch(b, 10_000, 16, 10) }
