// Package kdtree implements an exact k-nearest-neighbor index over fixed-length
// numeric feature vectors: a k-d tree built once from a batch of records.
//
// 🚀 What is a k-d tree?
//
//	A binary tree that recursively partitions K-dimensional space. Every node
//	splits its subtree on one axis, cycling the axis with depth
//	(axis = depth mod K). Points whose coordinate on that axis is not greater
//	than the node's go left, the rest go right.
//
// ✨ Key features:
//   - median build via quickselect: expected O(n) per level, O(n log n) total
//   - branch-and-bound k-NN: exact results, squared Euclidean distance
//   - arena storage: nodes addressed by index, no pointer graph to leak
//   - explicit work stacks for build, search and release, so skewed trees
//     built from duplicate-heavy data cannot exhaust the goroutine stack
//   - value semantics on demand: Clone (deep copy), Move/Take (ownership
//     transfer), Release (drop every node)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kdknn/kdtree"
//
//	tree, err := kdtree.Build(records)
//	if err != nil {
//	  // ErrDimensionMismatch, ErrBadDimension, ErrDepthExceeded
//	}
//	nearest, err := tree.Nearest([]float64{0.9, 0.9}, 3)
//
// Search contract:
//   - an empty tree fails with ErrEmptyStructure
//   - k == 0 returns an empty result
//   - otherwise exactly min(k, Len()) records, nearest first
//   - ties between equal distances are resolved by traversal and eviction
//     order; that order is deterministic for a given tree but otherwise
//     unspecified
//
// Performance:
//
//   - Build:  O(n log n) expected
//   - Search: O(log n) typical, O(n) worst case (high dimension, skew)
//   - Memory: one node per record; the arena is a single slice
//
// A Tree is not safe for concurrent mutation. Concurrent Nearest calls on a
// tree that is not being moved or released only read the arena.
package kdtree
