package knn

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/kdknn/kdtree"
	"github.com/katalvlaran/kdknn/logging"
	"github.com/katalvlaran/kdknn/record"
)

// Classifier predicts labels by majority vote among nearest neighbors.
type Classifier[F record.Number, L comparable] struct {
	tree *kdtree.Tree[F, L]
	opts Options[L]
}

// New builds a Classifier over a private k-d tree of train.
// Build errors from kdtree are returned wrapped.
func New[F record.Number, L comparable](train []record.Record[F, L], opts ...Option[L]) (*Classifier[F, L], error) {
	o := DefaultOptions[L]()
	for _, opt := range opts {
		opt(&o)
	}

	tree, err := kdtree.Build(train, o.TreeOptions...)
	if err != nil {
		return nil, fmt.Errorf("knn: %w", err)
	}
	o.Logger.Debug("classifier built",
		logging.KeyRecords, tree.Len(),
		logging.KeyDim, tree.Dim(),
		logging.KeyHeight, tree.Height(),
	)

	return &Classifier[F, L]{tree: tree, opts: o}, nil
}

// Tree exposes the owned index for read-only queries.
func (c *Classifier[F, L]) Tree() *kdtree.Tree[F, L] { return c.tree }

// Predict returns the majority label among the k nearest training records.
//
// Errors:
//   - ErrInvalidArgument         — k <= 0.
//   - kdtree.ErrEmptyStructure   — the classifier was trained on no records.
//   - kdtree.ErrDimensionMismatch — len(query) differs from the training data.
func (c *Classifier[F, L]) Predict(query []F, k int) (L, error) {
	var zero L
	if k <= 0 {
		return zero, fmt.Errorf("knn: Predict k=%d: %w", k, ErrInvalidArgument)
	}
	hits, err := c.tree.Search(query, k)
	if err != nil {
		return zero, fmt.Errorf("knn: Predict: %w", err)
	}
	if c.opts.LabelLess != nil {
		less := c.opts.LabelLess
		sort.SliceStable(hits, func(i, j int) bool {
			if hits[i].DistSq != hits[j].DistSq {
				return hits[i].DistSq < hits[j].DistSq
			}
			return less(hits[i].Record.Label, hits[j].Record.Label)
		})
	}

	return vote(hits), nil
}

// vote tallies labels in order; the first label to reach the maximum wins.
func vote[F record.Number, L comparable](hits []kdtree.Neighbor[F, L]) L {
	counts := make(map[L]int, len(hits))
	var (
		best      L
		bestCount int
	)
	for i := range hits {
		l := hits[i].Record.Label
		counts[l]++
		if counts[l] > bestCount {
			bestCount = counts[l]
			best = l
		}
	}

	return best
}

// Score predicts every record of test and returns how many labels matched.
func (c *Classifier[F, L]) Score(test []record.Record[F, L], k int) (int, error) {
	correct := 0
	for i := range test {
		got, err := c.Predict(test[i].Features, k)
		if err != nil {
			return 0, fmt.Errorf("knn: Score record %d: %w", i, err)
		}
		if got == test[i].Label {
			correct++
		}
	}

	return correct, nil
}

// Accuracy returns 100 * correct / len(test).
// An empty test batch fails with ErrInvalidArgument.
func (c *Classifier[F, L]) Accuracy(test []record.Record[F, L], k int) (float64, error) {
	if len(test) == 0 {
		return 0, fmt.Errorf("knn: Accuracy on empty batch: %w", ErrInvalidArgument)
	}
	correct, err := c.Score(test, k)
	if err != nil {
		return 0, err
	}

	return float64(correct) * 100 / float64(len(test)), nil
}
