// Package kdknn is a spatial index and nearest-neighbor classification
// toolkit: build a k-d tree over labeled feature vectors, answer exact
// k-nearest-neighbor queries, vote on labels and measure how well the vote
// generalizes.
//
// 🚀 What is kdknn?
//
//	A generic, allocation-conscious library that brings together:
//		• Records: feature vector + label over any integer or float type
//		• k-d tree: balanced build by median selection, branch-and-bound kNN
//		• Classifier: majority vote among the k nearest training records
//		• Evaluation: stratified split, k-fold cross validation, statistics
//		• Datasets: CSV (plain, gzip, zstd, lz4), SQLite, feature scaling
//
// ✨ Why choose kdknn?
//
//   - Exact answers – pruning never drops a true neighbor
//   - No recursion – build, search and release run on explicit stacks
//   - Explicit ownership – Clone, Take and Move with documented semantics
//   - Reproducible – every shuffle takes a seed or a *rand.Rand
//
// Under the hood, everything is organized in subpackages:
//
//	record/  — Record[F, L] and helpers
//	kdtree/  — Build, Search, Nearest, Clone/Take/Move/Release
//	knn/     — Classifier: Predict, Score, Accuracy
//	eval/    — Split, CrossValidate, Summarize, Analyze, SweepK
//	dataset/ — ReadCSV, LoadFile, ReadSQL, MinMax, ZScore
//	report/  — accuracy-vs-k tables and CSV
//	logging/ — slog loggers shared by knn and eval
//
// Quick start:
//
//	train, _ := dataset.LoadFile("Iris.csv", 4)
//	clf, _ := knn.New(train)
//	label, _ := clf.Predict([]float64{5.9, 3.0, 5.1, 1.8}, 5)
//
// The cmd/kdknn binary wraps the same pipeline behind flags.
package kdknn
