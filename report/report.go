// Package report writes (k, accuracy) series, the output of a k sweep, as an
// aligned table or as CSV for external plotting.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// Point is the test accuracy (percent) reached with k neighbors.
type Point struct {
	K        int
	Accuracy float64
}

// Best returns the point with the highest accuracy, preferring the smaller k
// on ties. ok is false for an empty series.
func Best(points []Point) (best Point, ok bool) {
	for i, p := range points {
		if i == 0 || p.Accuracy > best.Accuracy || (p.Accuracy == best.Accuracy && p.K < best.K) {
			best = p
		}
	}

	return best, len(points) > 0
}

// WriteTable renders points as two aligned columns with a header.
func WriteTable(w io.Writer, points []Point) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintln(tw, "k\taccuracy %\t"); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\t\n", p.K, p.Accuracy); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteCSV writes a "k,accuracy" header followed by one row per point.
func WriteCSV(w io.Writer, points []Point) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"k", "accuracy"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{strconv.Itoa(p.K), strconv.FormatFloat(p.Accuracy, 'f', -1, 64)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
