// SPDX-License-Identifier: MIT

package kdtree

import (
	"slices"

	"github.com/katalvlaran/kdknn/record"
)

// Clone returns a deep copy of the tree: every node's point, label, axis and
// both child links. An absent child stays absent. The clone shares no
// storage with t, so releasing or moving either leaves the other intact.
//
// Complexity: O(n·K).
func (t *Tree[F, L]) Clone() *Tree[F, L] {
	clone := &Tree[F, L]{root: absent, dim: t.dim, height: t.height}
	if len(t.nodes) == 0 {
		return clone
	}
	clone.root = t.root
	clone.nodes = make([]node[F, L], len(t.nodes))
	for i := range t.nodes {
		clone.nodes[i] = node[F, L]{
			point: slices.Clone(t.nodes[i].point),
			label: t.nodes[i].label,
			axis:  t.nodes[i].axis,
			left:  t.nodes[i].left,
			right: t.nodes[i].right,
		}
	}

	return clone
}

// Take transfers ownership of t's nodes to a new tree and leaves t empty.
// Queries against t then fail with ErrEmptyStructure.
func (t *Tree[F, L]) Take() *Tree[F, L] {
	moved := &Tree[F, L]{nodes: t.nodes, root: t.root, dim: t.dim, height: t.height}
	t.nodes = nil
	t.root = absent
	t.height = 0

	return moved
}

// Move releases dst's current nodes, then transfers src's nodes into dst and
// leaves src empty. Moving a tree onto itself is a no-op.
func Move[F record.Number, L comparable](dst, src *Tree[F, L]) error {
	if dst == nil || src == nil {
		return ErrNilTree
	}
	if dst == src {
		return nil
	}
	dst.Release()
	*dst = *src.Take()

	return nil
}

// Release drops every node exactly once in post-order and leaves the tree
// empty. It returns the number of nodes released. Releasing an empty tree
// releases nothing.
func (t *Tree[F, L]) Release() int {
	released := 0
	if len(t.nodes) > 0 {
		type frame struct {
			node     int32
			expanded bool
		}
		var zero L
		stack := []frame{{node: t.root}}
		var f frame
		for len(stack) > 0 {
			f = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n := &t.nodes[f.node]
			if !f.expanded {
				stack = append(stack, frame{node: f.node, expanded: true})
				if n.right != absent {
					stack = append(stack, frame{node: n.right})
				}
				if n.left != absent {
					stack = append(stack, frame{node: n.left})
				}
				continue
			}
			// Children are gone; drop this node's references.
			n.point = nil
			n.label = zero
			n.left, n.right = absent, absent
			released++
		}
	}
	t.nodes = nil
	t.root = absent
	t.height = 0

	return released
}

// NodeView is a read-only snapshot of one node handed to Walk.
type NodeView[F record.Number, L comparable] struct {
	Point    []F
	Label    L
	Axis     int
	Depth    int
	HasLeft  bool
	HasRight bool
}

// Walk visits nodes in pre-order (node, left subtree, right subtree) and
// stops early when fn returns false. Point is a copy.
func (t *Tree[F, L]) Walk(fn func(v NodeView[F, L]) bool) {
	if len(t.nodes) == 0 {
		return
	}
	type frame struct {
		node  int32
		depth int
	}
	stack := []frame{{node: t.root}}
	var f frame
	for len(stack) > 0 {
		f = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[f.node]
		if !fn(NodeView[F, L]{
			Point:    slices.Clone(n.point),
			Label:    n.label,
			Axis:     n.axis,
			Depth:    f.depth,
			HasLeft:  n.left != absent,
			HasRight: n.right != absent,
		}) {
			return
		}
		if n.right != absent {
			stack = append(stack, frame{node: n.right, depth: f.depth + 1})
		}
		if n.left != absent {
			stack = append(stack, frame{node: n.left, depth: f.depth + 1})
		}
	}
}

// Records returns a copy of every stored record in pre-order.
func (t *Tree[F, L]) Records() []record.Record[F, L] {
	out := make([]record.Record[F, L], 0, len(t.nodes))
	t.Walk(func(v NodeView[F, L]) bool {
		out = append(out, record.Record[F, L]{Features: v.Point, Label: v.Label})
		return true
	})

	return out
}
