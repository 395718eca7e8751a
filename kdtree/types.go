// SPDX-License-Identifier: MIT

package kdtree

import (
	"errors"

	"github.com/katalvlaran/kdknn/record"
)

// Sentinel errors returned by the kdtree package.
var (
	// ErrEmptyStructure indicates a query against a tree with no stored records.
	ErrEmptyStructure = errors.New("kdtree: tree is empty")

	// ErrInvalidK indicates a negative neighbor count.
	ErrInvalidK = errors.New("kdtree: k must be non-negative")

	// ErrDimensionMismatch indicates a record or query whose length differs
	// from the tree dimension.
	ErrDimensionMismatch = errors.New("kdtree: dimension mismatch")

	// ErrBadDimension indicates a zero-length feature vector.
	ErrBadDimension = errors.New("kdtree: dimension must be positive")

	// ErrDepthExceeded indicates the tree height would exceed Options.MaxDepth.
	ErrDepthExceeded = errors.New("kdtree: maximum depth exceeded")

	// ErrNilTree indicates a nil *Tree passed to Move.
	ErrNilTree = errors.New("kdtree: tree is nil")
)

// Options configures Build.
//
// Dim      – expected feature count. 0 infers it from the first record.
// MaxDepth – upper bound on tree height. 0 means unbounded.
type Options struct {
	Dim      int
	MaxDepth int
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns Options with dimension inference and no depth bound.
func DefaultOptions() Options {
	return Options{Dim: 0, MaxDepth: 0}
}

// WithDim fixes the dimension K. Records of any other length make Build fail
// with ErrDimensionMismatch, and an empty build still reports Dim() == k.
// Panics if k < 1.
func WithDim(k int) Option {
	if k < 1 {
		panic(ErrBadDimension.Error())
	}
	return func(o *Options) {
		o.Dim = k
	}
}

// WithMaxDepth bounds the tree height. Build fails fast with
// ErrDepthExceeded instead of producing a deeper tree.
// Panics if depth < 0; 0 disables the bound.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic("kdtree: WithMaxDepth(negative)")
	}
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// Neighbor is one search hit: a copy of the stored record and its squared
// Euclidean distance to the query.
type Neighbor[F record.Number, L comparable] struct {
	Record record.Record[F, L]
	DistSq float64
}
