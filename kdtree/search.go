// SPDX-License-Identifier: MIT

package kdtree

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/kdknn/record"
)

// SquaredDistance returns the sum of per-axis squared differences between a
// and b. Lengths are assumed equal.
func SquaredDistance[F record.Number](a, b []F) float64 {
	var sum, d float64
	for i := range a {
		d = float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return sum
}

// candidate is a kept node and its squared distance to the query.
type candidate struct {
	node int32
	dist float64
}

// candidateHeap is a max-heap on dist: the root is the worst kept candidate.
type candidateHeap []candidate

var _ heap.Interface = (*candidateHeap)(nil)

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool { return h[i].dist > h[j].dist }
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}

// searchStep is either a node visit or the deferred pruning test for a
// secondary subtree, evaluated once the primary side is fully explored.
type searchStep struct {
	node  int32
	diff  float64
	check bool
}

// Search returns the k stored records closest to query, nearest first, with
// their squared distances.
//
// Algorithm (branch and bound):
//  1. Visit a node: push it into a max-heap of capacity k, evicting the
//     worst candidate when the heap overflows.
//  2. axisDiff = query[axis] - point[axis]. The primary child is left when
//     axisDiff < 0, right otherwise; the other child is secondary.
//  3. Explore the primary subtree unconditionally.
//  4. Explore the secondary subtree only if fewer than k candidates are held
//     or axisDiff² is smaller than the worst held distance: only then can
//     the far side of the splitting hyperplane hold a closer point.
//
// The traversal runs on an explicit stack and visits nodes in exactly the
// order of the recursive formulation.
//
// Errors:
//   - ErrEmptyStructure    — the tree holds no records.
//   - ErrInvalidK          — k < 0.
//   - ErrDimensionMismatch — len(query) != Dim().
//
// k == 0 returns an empty, non-nil slice.
func (t *Tree[F, L]) Search(query []F, k int) ([]Neighbor[F, L], error) {
	if len(t.nodes) == 0 {
		return nil, ErrEmptyStructure
	}
	if k < 0 {
		return nil, fmt.Errorf("Search: k=%d: %w", k, ErrInvalidK)
	}
	if len(query) != t.dim {
		return nil, fmt.Errorf("Search: query has %d features, want %d: %w", len(query), t.dim, ErrDimensionMismatch)
	}
	if k == 0 {
		return []Neighbor[F, L]{}, nil
	}

	best := make(candidateHeap, 0, min(k, len(t.nodes))+1)
	stack := make([]searchStep, 0, 2*t.height+2)
	stack = append(stack, searchStep{node: t.root})

	var (
		s                  searchStep
		n                  *node[F, L]
		dist, diff         float64
		primary, secondary int32
	)
	for len(stack) > 0 {
		s = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.check {
			if best.Len() < k || s.diff*s.diff < best[0].dist {
				stack = append(stack, searchStep{node: s.node})
			}
			continue
		}

		n = &t.nodes[s.node]
		dist = SquaredDistance(query, n.point)
		heap.Push(&best, candidate{node: s.node, dist: dist})
		if best.Len() > k {
			heap.Pop(&best)
		}

		diff = float64(query[n.axis]) - float64(n.point[n.axis])
		if diff < 0 {
			primary, secondary = n.left, n.right
		} else {
			primary, secondary = n.right, n.left
		}
		// LIFO: the primary subtree drains before the secondary check runs.
		if secondary != absent {
			stack = append(stack, searchStep{node: secondary, diff: diff, check: true})
		}
		if primary != absent {
			stack = append(stack, searchStep{node: primary})
		}
	}

	// Popping the max-heap yields farthest first; fill from the back.
	out := make([]Neighbor[F, L], best.Len())
	for i := len(out) - 1; i >= 0; i-- {
		c := heap.Pop(&best).(candidate)
		n = &t.nodes[c.node]
		out[i] = Neighbor[F, L]{
			Record: record.Record[F, L]{Features: slices.Clone(n.point), Label: n.label},
			DistSq: c.dist,
		}
	}

	return out, nil
}

// Nearest returns the k stored records closest to query, nearest first.
// See Search for the contract; distances are dropped.
func (t *Tree[F, L]) Nearest(query []F, k int) ([]record.Record[F, L], error) {
	hits, err := t.Search(query, k)
	if err != nil {
		return nil, err
	}
	out := make([]record.Record[F, L], len(hits))
	for i := range hits {
		out[i] = hits[i].Record
	}

	return out, nil
}
