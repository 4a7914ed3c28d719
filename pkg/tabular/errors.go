package tabular

import (
	"errors"
	"fmt"
)

// Content errors. Both are fatal: the reader surfaces them immediately and
// abandons the remaining input.
var (
	// ErrUnallowedQuote is returned when a quote character appears inside an
	// unquoted field, or when a non-doubled quote follows a closing quote
	// inside a quoted field.
	ErrUnallowedQuote = errors.New("tabular: quote not allowed here")

	// ErrUnclosedQuote is returned when the input ends inside a quoted field.
	// The attached position is that of the opening quote, not of the end of
	// the stream.
	ErrUnclosedQuote = errors.New("tabular: quoted field never closed")

	// ErrUnknownDialect is returned by LookupDialect and NewReaderNamed for
	// names with no registered dialect.
	ErrUnknownDialect = errors.New("tabular: unknown dialect")
)

// ParseError reports malformed input with the exact source position of the
// offending character. Line and Column are 1-based; Column is counted within
// the line. Offset is the 1-based rune index into the whole input.
type ParseError struct {
	Line   int
	Column int
	Offset int
	Err    error
}

// Error formats the error with its position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d, column %d (offset %d): %v",
		e.Line, e.Column, e.Offset, e.Err)
}

// Unwrap returns the underlying sentinel so ParseError participates in
// errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// DialectError reports an invalid dialect configuration. It is returned at
// construction time, before any input is consumed.
type DialectError struct {
	Field   string
	Message string
}

func (e *DialectError) Error() string {
	return "tabular: invalid dialect: " + e.Field + ": " + e.Message
}
