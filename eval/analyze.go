package eval

import (
	"fmt"
	"io"

	"github.com/katalvlaran/kdknn/knn"
	"github.com/katalvlaran/kdknn/logging"
	"github.com/katalvlaran/kdknn/record"
	"github.com/katalvlaran/kdknn/report"
)

// Analysis is the outcome of one Analyze run for a fixed k.
type Analysis struct {
	K              int
	TrainSize      int
	TestSize       int
	TrainAccuracy  float64
	FoldAccuracies []float64
	CrossVal       Stats
	TestAccuracy   float64
}

// Analyze evaluates a k-nearest-neighbor classifier end to end:
//  1. stratified split with Options.TestPercent held out (default 20%);
//  2. accuracy of a classifier trained on train, scored on train itself;
//  3. Options.Folds-fold cross validation on train (default 10);
//  4. accuracy of the step-2 classifier on the held-out test set.
//
// Errors:
//   - ErrInvalidArgument — k <= 0, too few training records for the fold
//     count, or a hold-out share that leaves the test set empty.
//   - wrapped kdtree/knn errors.
func Analyze[F record.Number, L comparable](dataset []record.Record[F, L], k int, opts ...Option) (*Analysis, error) {
	if k <= 0 {
		return nil, fmt.Errorf("eval: Analyze k=%d: %w", k, ErrInvalidArgument)
	}
	o := resolve(opts)
	train, test := split(dataset, o.TestPercent, o)
	if len(test) == 0 {
		return nil, fmt.Errorf("eval: Analyze: %d%% of %d records leaves no test set: %w",
			o.TestPercent, len(dataset), ErrInvalidArgument)
	}

	clf, err := knn.New(train, knn.WithLogger[L](o.Logger))
	if err != nil {
		return nil, fmt.Errorf("eval: Analyze: %w", err)
	}
	a := &Analysis{K: k, TrainSize: len(train), TestSize: len(test)}

	if a.TrainAccuracy, err = clf.Accuracy(train, k); err != nil {
		return nil, fmt.Errorf("eval: Analyze train: %w", err)
	}
	if a.FoldAccuracies, err = crossValidate(train, o.Folds, k, o); err != nil {
		return nil, err
	}
	if a.CrossVal, err = Summarize(a.FoldAccuracies); err != nil {
		return nil, err
	}
	if a.TestAccuracy, err = clf.Accuracy(test, k); err != nil {
		return nil, fmt.Errorf("eval: Analyze test: %w", err)
	}

	o.Logger.Info("analysis complete",
		logging.KeyK, k,
		logging.KeyRecords, len(dataset),
		"train_accuracy", a.TrainAccuracy,
		"cv_mean", a.CrossVal.Mean,
		"cv_stddev", a.CrossVal.StdDev,
		"test_accuracy", a.TestAccuracy,
	)

	return a, nil
}

// Print writes a human-readable report of a.
func (a *Analysis) Print(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "k = %d (train %d, test %d)\n\n", a.K, a.TrainSize, a.TestSize); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Train set accuracy: %.2f%%\n\n", a.TrainAccuracy); err != nil {
		return err
	}
	for i, acc := range a.FoldAccuracies {
		if _, err := fmt.Fprintf(w, "Accuracy fold[%d]: %.2f%%\n", i+1, acc); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Average: %.2f%%\nSD: %.4f\n\n", a.CrossVal.Mean, a.CrossVal.StdDev); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Test set accuracy: %.2f%%\n", a.TestAccuracy)

	return err
}

// SweepK splits dataset once (Options.TestPercent held out), trains one
// classifier and reports its test accuracy for every k in [1, maxK].
//
// Errors:
//   - ErrInvalidArgument — maxK < 1 or an empty test set.
//   - wrapped kdtree/knn errors.
func SweepK[F record.Number, L comparable](dataset []record.Record[F, L], maxK int, opts ...Option) ([]report.Point, error) {
	if maxK < 1 {
		return nil, fmt.Errorf("eval: SweepK maxK=%d: %w", maxK, ErrInvalidArgument)
	}
	o := resolve(opts)
	train, test := split(dataset, o.TestPercent, o)
	if len(test) == 0 {
		return nil, fmt.Errorf("eval: SweepK: %d%% of %d records leaves no test set: %w",
			o.TestPercent, len(dataset), ErrInvalidArgument)
	}

	clf, err := knn.New(train, knn.WithLogger[L](o.Logger))
	if err != nil {
		return nil, fmt.Errorf("eval: SweepK: %w", err)
	}
	points := make([]report.Point, 0, maxK)
	for k := 1; k <= maxK; k++ {
		acc, err := clf.Accuracy(test, k)
		if err != nil {
			return nil, fmt.Errorf("eval: SweepK k=%d: %w", k, err)
		}
		o.Logger.Debug("k scored", logging.KeyK, k, logging.KeyAccuracy, acc)
		points = append(points, report.Point{K: k, Accuracy: acc})
	}

	return points, nil
}
