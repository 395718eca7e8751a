package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/kdknn/record"
)

// OpenSQLite opens a SQLite database through the pure-Go modernc driver.
// dsn is a file path or ":memory:".
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("dataset: open sqlite %q: %w", dsn, err)
	}

	return db, nil
}

// ReadSQL runs query and turns every row into a record. The result must
// have exactly dim+1 columns: dim numeric features followed by the label.
// A NULL feature or label is a *FormatError whose Line is the 1-based row.
func ReadSQL(ctx context.Context, db *sql.DB, query string, dim int, args ...any) ([]record.Record[float64, string], error) {
	if dim < 1 {
		return nil, fmt.Errorf("dataset: ReadSQL dim=%d: %w", dim, ErrDataFormat)
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dataset: ReadSQL: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("dataset: ReadSQL: %w", err)
	}
	if len(cols) != dim+1 {
		return nil, fmt.Errorf("dataset: ReadSQL: %d columns, want %d: %w", len(cols), dim+1, ErrDataFormat)
	}

	var (
		out   []record.Record[float64, string]
		vals  = make([]sql.NullFloat64, dim)
		label sql.NullString
		dest  = make([]any, dim+1)
	)
	for j := range vals {
		dest[j] = &vals[j]
	}
	dest[dim] = &label

	row := 0
	for rows.Next() {
		row++
		if err = rows.Scan(dest...); err != nil {
			return nil, &FormatError{Line: row, Reason: "scan", Err: err}
		}
		features := make([]float64, dim)
		for j := range vals {
			if !vals[j].Valid {
				return nil, &FormatError{Line: row, Column: j + 1, Reason: "NULL feature"}
			}
			features[j] = vals[j].Float64
		}
		if !label.Valid || label.String == "" {
			return nil, &FormatError{Line: row, Column: dim + 1, Reason: "missing label"}
		}
		out = append(out, record.Record[float64, string]{Features: features, Label: label.String})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset: ReadSQL: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyDataset
	}

	return out, nil
}
