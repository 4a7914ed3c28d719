package tabular

import (
	"errors"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Line: 3, Column: 7, Offset: 42, Err: ErrUnallowedQuote}
	want := "parse error on line 3, column 7 (offset 42): tabular: quote not allowed here"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseError_Unwrap(t *testing.T) {
	err := &ParseError{Line: 1, Column: 1, Offset: 1, Err: ErrUnclosedQuote}
	if !errors.Is(err, ErrUnclosedQuote) {
		t.Error("errors.Is did not match the wrapped sentinel")
	}
	if errors.Is(err, ErrUnallowedQuote) {
		t.Error("errors.Is matched the wrong sentinel")
	}
}

func TestDialectError_Error(t *testing.T) {
	err := &DialectError{Field: "Delimiters", Message: "at least one delimiter is required"}
	want := "tabular: invalid dialect: Delimiters: at least one delimiter is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
