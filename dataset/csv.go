package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/kdknn/record"
)

// ReadCSV parses delimited rows from r into records with dim float64
// features and a string label.
//
// Row layout: [id,] f1, ..., f_dim, label. Everything after the last
// feature is the label, separators included; surrounding spaces are trimmed.
// Blank lines are skipped.
//
// Errors:
//   - *FormatError (errors.Is ErrDataFormat) — unparsable feature, missing
//     label, short row or malformed quoting.
//   - ErrEmptyDataset — no data rows.
//   - ErrDataFormat — dim < 1.
func ReadCSV(r io.Reader, dim int, opts ...Option) ([]record.Record[float64, string], error) {
	if dim < 1 {
		return nil, fmt.Errorf("dataset: ReadCSV dim=%d: %w", dim, ErrDataFormat)
	}
	o := resolve(opts)

	cr := csv.NewReader(r)
	cr.Comma = o.Separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	first := 0
	if o.IDColumn {
		first = 1
	}
	sep := string(o.Separator)

	var (
		out    []record.Record[float64, string]
		header = o.Header
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &FormatError{Line: pe.Line, Column: pe.Column, Reason: "malformed row", Err: pe.Err}
			}
			return nil, fmt.Errorf("dataset: ReadCSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if header {
			header = false
			continue
		}

		if len(fields) < first+dim+1 {
			return nil, &FormatError{
				Line:   line,
				Reason: fmt.Sprintf("%d fields, want at least %d", len(fields), first+dim+1),
			}
		}
		features := make([]float64, dim)
		for j := 0; j < dim; j++ {
			v, perr := strconv.ParseFloat(strings.TrimSpace(fields[first+j]), 64)
			if perr != nil {
				return nil, &FormatError{Line: line, Column: first + j + 1, Reason: "feature", Err: perr}
			}
			features[j] = v
		}
		label := strings.TrimSpace(strings.Join(fields[first+dim:], sep))
		if label == "" {
			return nil, &FormatError{Line: line, Column: first + dim + 1, Reason: "missing label"}
		}
		out = append(out, record.Record[float64, string]{Features: features, Label: label})
	}

	if len(out) == 0 {
		return nil, ErrEmptyDataset
	}

	return out, nil
}
