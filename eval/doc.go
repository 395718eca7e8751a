// Package eval measures how well a knn.Classifier generalizes.
//
// Protocol:
//
//	Split        — stratified train/test partition. Each label sends
//	               floor(count*pct/100) of its records to the test set,
//	               chosen after a seeded shuffle.
//	CrossValidate — k-fold CV over the training set only. Folds are
//	               contiguous blocks of floor(n/folds) records, the last one
//	               absorbing the remainder. Each fold gets a fresh classifier
//	               built from the other folds; it is discarded before the
//	               next fold starts.
//	Summarize    — mean and sample standard deviation (n-1) of accuracies.
//
// The test set never reaches a classifier during cross validation, so the
// final test accuracy reported by Analyze is free of leakage.
//
// Randomness is explicit: pass WithSeed or WithRand to reproduce a split.
// Without either, a time-seeded source is used.
//
// Example:
//
//	train, test, err := eval.Split(records, 20, eval.WithSeed(7))
//	accs, err := eval.CrossValidate(train, 10, 5)
//	stats, _ := eval.Summarize(accs)
//	fmt.Printf("%.2f%% ± %.2f\n", stats.Mean, stats.StdDev)
package eval
