// Package knn is a k-nearest-neighbors classifier over a kdtree index.
//
// A Classifier owns one kdtree.Tree built from its training records. Predict
// fetches the k closest records and returns the label that occurs most often
// among them.
//
// Tie-break:
//
//	Labels are tallied in the order the neighbors are returned (nearest
//	first). The first label to reach the running maximum count is kept; a
//	later label that only equals that count does not replace it. Neighbors at
//	the same distance come back in an unspecified order, so for fully
//	deterministic predictions pass WithLabelOrder, which sorts neighbors by
//	(distance, label) before tallying.
//
// Usage:
//
//	clf, err := knn.New(train)
//	label, err := clf.Predict(query, 5)
//	acc, err := clf.Accuracy(test, 5) // percent in [0, 100]
package knn
