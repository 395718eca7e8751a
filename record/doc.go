// Package record defines the unit stored in and returned by the kdknn index:
// a fixed-length numeric feature vector paired with a label.
//
// A Record is a plain value. Components that keep a record (kdtree, knn, eval)
// copy its features first, so the caller may reuse or mutate its own slices
// without affecting a built index.
//
// The feature element type is any integer or floating-point type (Number);
// the label is any comparable type, typically a string class name.
//
//	r := record.New([]float64{5.1, 3.5, 1.4, 0.2}, "Iris-setosa")
//	r.Dim() // 4
package record
