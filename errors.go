package csvkit

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned when a required argument (path, handler, rows) is missing.
	ErrNilInput = errors.New("csvkit: nil input")
	// ErrUnbalancedQuotes is returned when a line ends inside a quoted field.
	ErrUnbalancedQuotes = errors.New("csvkit: unbalanced quotes in field")
	// ErrColumnOutOfRange is returned when a column index does not exist in a row.
	ErrColumnOutOfRange = errors.New("csvkit: column index out of range")
	// ErrFieldCount is returned when a record contains an unexpected number of fields.
	ErrFieldCount = errors.New("csvkit: wrong number of fields")
	// ErrLineBreak is returned by Writer.Write for a field holding '\n' or '\r'. Rows are read one
	// physical line at a time, so such a field cannot be read back.
	ErrLineBreak = errors.New("csvkit: field contains a line break")
	// ErrUnquotable is returned by Writer.Write for a field holding the delimiter when quoting is
	// disabled.
	ErrUnquotable = errors.New("csvkit: field contains the delimiter and quoting is disabled")
)

// ParseError contains location information for CSV parsing errors.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the parse error message with the stored line, column, and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvkit: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ColumnError reports the first row that is too narrow for a column operation.
type ColumnError struct {
	Row   int
	Index int
	Width int
}

func (e *ColumnError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvkit: column %d out of range in row %d (width %d)", e.Index, e.Row, e.Width)
}

// Unwrap returns ErrColumnOutOfRange.
func (e *ColumnError) Unwrap() error {
	if e == nil {
		return nil
	}
	return ErrColumnOutOfRange
}
