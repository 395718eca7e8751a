package kdtree_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kdknn/kdtree"
	"github.com/katalvlaran/kdknn/record"
)

// ExampleTree_Search builds a tree over a handful of 2-D points and asks for
// the two closest to (0.9, 0.9).
func ExampleTree_Search() {
	tree, err := kdtree.Build([]record.Record[float64, string]{
		record.New([]float64{0, 0}, "a"),
		record.New([]float64{1, 1}, "b"),
		record.New([]float64{5, 5}, "c"),
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	hits, err := tree.Search([]float64{0.9, 0.9}, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, h := range hits {
		fmt.Printf("%s %.2f\n", h.Record.Label, h.DistSq)
	}
	// Output:
	// b 0.02
	// a 1.62
}

// ExampleTree_Take shows that a moved-from tree is empty.
func ExampleTree_Take() {
	src, _ := kdtree.Build([]record.Record[int, string]{
		record.New([]int{1, 2}, "p"),
		record.New([]int{3, 4}, "q"),
	})
	dst := src.Take()

	_, err := src.Nearest([]int{0, 0}, 1)
	fmt.Println(dst.Len(), err)
	// Output:
	// 2 kdtree: tree is empty
}

// ExampleTree_Search_stations finds the three charging stations closest to a
// car at (1, 0.5) on a city grid measured in kilometers.
func ExampleTree_Search_stations() {
	tree, err := kdtree.Build([]record.Record[float64, string]{
		record.New([]float64{0.0, 0.0}, "Central"),
		record.New([]float64{2.5, 1.0}, "Harbor"),
		record.New([]float64{-1.2, 3.4}, "Museum"),
		record.New([]float64{4.0, 4.0}, "Airport"),
		record.New([]float64{1.1, -2.2}, "Stadium"),
		record.New([]float64{-3.0, -1.0}, "Old Town"),
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	hits, err := tree.Search([]float64{1, 0.5}, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for i, h := range hits {
		fmt.Printf("%d. %s %.2f km\n", i+1, h.Record.Label, math.Sqrt(h.DistSq))
	}
	// Output:
	// 1. Central 1.12 km
	// 2. Harbor 1.58 km
	// 3. Stadium 2.70 km
}
