package eval

import (
	"fmt"

	"github.com/katalvlaran/kdknn/knn"
	"github.com/katalvlaran/kdknn/logging"
	"github.com/katalvlaran/kdknn/record"
)

// FoldBounds returns the [begin, end) index range of every fold when n
// records are cut into folds contiguous blocks of n/folds records; the last
// block absorbs the remainder.
//
// Errors:
//   - ErrInvalidArgument — folds < 2 or folds > n.
func FoldBounds(n, folds int) ([][2]int, error) {
	if folds < 2 || folds > n {
		return nil, fmt.Errorf("eval: %d folds over %d records: %w", folds, n, ErrInvalidArgument)
	}
	size := n / folds
	bounds := make([][2]int, folds)
	for i := range bounds {
		bounds[i][0] = i * size
		bounds[i][1] = (i + 1) * size
	}
	bounds[folds-1][1] = n

	return bounds, nil
}

// CrossValidate runs k-fold cross validation of a k-nearest-neighbor
// classifier over train and returns the accuracy (percent) of every fold in
// fold order.
//
// For fold i a fresh classifier is built from every other fold and scored
// on fold i; it is dropped before fold i+1 is built.
//
// Errors:
//   - ErrInvalidArgument — folds < 2, folds > len(train) or k <= 0.
//   - wrapped kdtree/knn errors (for example a dimension mismatch).
func CrossValidate[F record.Number, L comparable](train []record.Record[F, L], folds, k int, opts ...Option) ([]float64, error) {
	return crossValidate(train, folds, k, resolve(opts))
}

func crossValidate[F record.Number, L comparable](train []record.Record[F, L], folds, k int, o Options) ([]float64, error) {
	if k <= 0 {
		return nil, fmt.Errorf("eval: CrossValidate k=%d: %w", k, ErrInvalidArgument)
	}
	bounds, err := FoldBounds(len(train), folds)
	if err != nil {
		return nil, err
	}

	accuracies := make([]float64, 0, folds)
	for i, b := range bounds {
		rest := make([]record.Record[F, L], 0, len(train)-(b[1]-b[0]))
		rest = append(rest, train[:b[0]]...)
		rest = append(rest, train[b[1]:]...)

		clf, err := knn.New(rest, knn.WithLogger[L](o.Logger))
		if err != nil {
			return nil, fmt.Errorf("eval: fold %d: %w", i+1, err)
		}
		acc, err := clf.Accuracy(train[b[0]:b[1]], k)
		if err != nil {
			return nil, fmt.Errorf("eval: fold %d: %w", i+1, err)
		}
		o.Logger.Debug("fold scored",
			logging.KeyFold, i+1,
			logging.KeyFolds, folds,
			logging.KeyK, k,
			logging.KeyRecords, b[1]-b[0],
			logging.KeyAccuracy, acc,
		)
		accuracies = append(accuracies, acc)
	}

	return accuracies, nil
}
