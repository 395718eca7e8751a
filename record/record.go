// SPDX-License-Identifier: MIT

package record

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types a feature vector may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Record is a feature vector plus its label.
//
// Features must have the same length for every record handed to one index.
// Records are treated as immutable: the library never writes through
// Features of a record it received.
type Record[F Number, L comparable] struct {
	Features []F
	Label    L
}

// New returns a Record holding a private copy of features.
func New[F Number, L comparable](features []F, label L) Record[F, L] {
	return Record[F, L]{Features: slices.Clone(features), Label: label}
}

// Dim returns the number of features.
func (r Record[F, L]) Dim() int { return len(r.Features) }

// Equal reports whether r and other carry the same features and label.
func (r Record[F, L]) Equal(other Record[F, L]) bool {
	return r.Label == other.Label && slices.Equal(r.Features, other.Features)
}

// Clone returns a deep copy of r.
func (r Record[F, L]) Clone() Record[F, L] {
	return Record[F, L]{Features: slices.Clone(r.Features), Label: r.Label}
}

// CloneAll deep-copies every record in rs. A nil input yields nil.
func CloneAll[F Number, L comparable](rs []Record[F, L]) []Record[F, L] {
	if rs == nil {
		return nil
	}
	out := make([]Record[F, L], len(rs))
	for i := range rs {
		out[i] = rs[i].Clone()
	}

	return out
}

// Labels returns the label of every record, in order.
func Labels[F Number, L comparable](rs []Record[F, L]) []L {
	out := make([]L, len(rs))
	for i := range rs {
		out[i] = rs[i].Label
	}

	return out
}

// CountLabels tallies how many records carry each label.
func CountLabels[F Number, L comparable](rs []Record[F, L]) map[L]int {
	counts := make(map[L]int)
	for i := range rs {
		counts[rs[i].Label]++
	}

	return counts
}
