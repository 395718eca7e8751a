package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dataset package.
var (
	// ErrDataFormat classifies every malformed input row or column.
	ErrDataFormat = errors.New("dataset: invalid data format")

	// ErrEmptyDataset indicates a source that yielded no records.
	ErrEmptyDataset = errors.New("dataset: no records")

	// ErrUnsupportedCompression indicates an unknown Compression value.
	ErrUnsupportedCompression = errors.New("dataset: unsupported compression")
)

// FormatError locates a malformed row. Line is 1-based; Column is the
// 1-based field index, or 0 when the whole row is at fault.
type FormatError struct {
	Line   int
	Column int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("dataset: line %d", e.Line)
	if e.Column > 0 {
		msg += fmt.Sprintf(", column %d", e.Column)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes ErrDataFormat and the underlying cause.
func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrDataFormat}
	}

	return []error{ErrDataFormat, e.Err}
}
