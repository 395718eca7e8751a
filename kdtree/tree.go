// SPDX-License-Identifier: MIT

package kdtree

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/kdknn/record"
)

// absent marks a missing child or root.
const absent int32 = -1

// node is one arena slot. point is a private copy of the record's features.
type node[F record.Number, L comparable] struct {
	point []F
	label L
	axis  int
	left  int32
	right int32
}

// Tree is a k-d tree that exclusively owns its nodes.
//
// The zero value is an empty tree: every query fails with ErrEmptyStructure.
type Tree[F record.Number, L comparable] struct {
	nodes  []node[F, L]
	root   int32
	dim    int
	height int
}

// buildFrame is one pending [left, right) range of the working copy.
type buildFrame struct {
	left, right int
	depth       int
	parent      int32
	isLeft      bool
}

// Build constructs a balanced k-d tree from records.
//
// Algorithm Outline:
//  1. Copy records into a private working slice (the caller's slice is
//     never reordered).
//  2. Pop a range [left, right); an empty range yields an absent subtree.
//  3. axis = depth mod K; quickselect places the median by axis at
//     mid = left + (right-left)/2.
//  4. Materialize a node from the median and push [left, mid) and
//     [mid+1, right) at depth+1.
//
// An empty input produces an empty tree (root absent).
//
// Errors:
//   - ErrBadDimension      — the first record has no features.
//   - ErrDimensionMismatch — a record's length differs from K.
//   - ErrDepthExceeded     — height would exceed Options.MaxDepth.
//
// Complexity: O(n log n) expected time, O(n) memory.
func Build[F record.Number, L comparable](records []record.Record[F, L], opts ...Option) (*Tree[F, L], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dim := o.Dim
	if dim == 0 && len(records) > 0 {
		dim = records[0].Dim()
		if dim == 0 {
			return nil, fmt.Errorf("Build: record 0: %w", ErrBadDimension)
		}
	}
	for i := range records {
		if records[i].Dim() != dim {
			return nil, fmt.Errorf("Build: record %d has %d features, want %d: %w",
				i, records[i].Dim(), dim, ErrDimensionMismatch)
		}
	}

	t := &Tree[F, L]{root: absent, dim: dim}
	if len(records) == 0 {
		return t, nil
	}

	work := slices.Clone(records)
	t.nodes = make([]node[F, L], 0, len(work))

	stack := []buildFrame{{left: 0, right: len(work), depth: 0, parent: absent}}
	var f buildFrame
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.left >= f.right {
			continue
		}
		if o.MaxDepth > 0 && f.depth >= o.MaxDepth {
			return nil, fmt.Errorf("Build: depth %d with limit %d: %w", f.depth+1, o.MaxDepth, ErrDepthExceeded)
		}

		axis := f.depth % dim
		mid := f.left + (f.right-f.left)/2
		selectNth(work, f.left, f.right, mid, axis)

		idx := int32(len(t.nodes))
		t.nodes = append(t.nodes, node[F, L]{
			point: slices.Clone(work[mid].Features),
			label: work[mid].Label,
			axis:  axis,
			left:  absent,
			right: absent,
		})
		switch {
		case f.parent == absent:
			t.root = idx
		case f.isLeft:
			t.nodes[f.parent].left = idx
		default:
			t.nodes[f.parent].right = idx
		}
		if f.depth+1 > t.height {
			t.height = f.depth + 1
		}

		// Right first so the left range is materialized next.
		stack = append(stack,
			buildFrame{left: mid + 1, right: f.right, depth: f.depth + 1, parent: idx, isLeft: false},
			buildFrame{left: f.left, right: mid, depth: f.depth + 1, parent: idx, isLeft: true},
		)
	}

	return t, nil
}

// selectNth reorders rs[lo:hi] so rs[nth] holds the element that would be
// there if the range were sorted by Features[axis]. Afterwards every element
// of rs[lo:nth] compares <= rs[nth] and every element of rs[nth+1:hi]
// compares >= rs[nth]. Hoare partitioning with a median-of-three pivot.
func selectNth[F record.Number, L comparable](rs []record.Record[F, L], lo, hi, nth, axis int) {
	hi-- // inclusive upper bound from here on
	for hi > lo {
		mid := lo + (hi-lo)/2
		if rs[mid].Features[axis] < rs[lo].Features[axis] {
			rs[mid], rs[lo] = rs[lo], rs[mid]
		}
		if rs[hi].Features[axis] < rs[lo].Features[axis] {
			rs[hi], rs[lo] = rs[lo], rs[hi]
		}
		if rs[hi].Features[axis] < rs[mid].Features[axis] {
			rs[hi], rs[mid] = rs[mid], rs[hi]
		}
		pivot := rs[mid].Features[axis]

		i, j := lo, hi
		for i <= j {
			for rs[i].Features[axis] < pivot {
				i++
			}
			for rs[j].Features[axis] > pivot {
				j--
			}
			if i <= j {
				rs[i], rs[j] = rs[j], rs[i]
				i++
				j--
			}
		}

		// rs[lo..j] <= pivot, rs[i..hi] >= pivot, anything between equals pivot.
		switch {
		case nth <= j:
			hi = j
		case nth >= i:
			lo = i
		default:
			return
		}
	}
}

// Len returns the number of stored records.
func (t *Tree[F, L]) Len() int { return len(t.nodes) }

// IsEmpty reports whether the root is absent.
func (t *Tree[F, L]) IsEmpty() bool { return len(t.nodes) == 0 }

// Dim returns K, the feature count the tree was built for.
// It is 0 for a tree built from no records without WithDim.
func (t *Tree[F, L]) Dim() int { return t.dim }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[F, L]) Height() int { return t.height }
