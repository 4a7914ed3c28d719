package tabular

import "strings"

// Dialect describes how raw characters are interpreted during one parse:
// which characters separate fields, how quoting works, what marks a comment
// line and which characters are trimmed from field edges.
//
// A Dialect is a plain value with no identity; copying it is cheap and safe.
// The zero value is not usable (it has no delimiters); start from Default()
// or Whitespace() and adjust fields as needed.
type Dialect struct {
	// Delimiters is the set of runes that separate fields. It must contain
	// at least one rune.
	Delimiters string

	// Quote is the character that opens and closes a quoted field.
	// 0 disables quoting entirely.
	Quote rune

	// Comment is the character that, at the start of a line, marks the rest
	// of the line as a comment. 0 disables comment detection.
	Comment rune

	// TrimLeft and TrimRight are the character sets stripped from the left
	// and right edges of each unquoted field. An empty string means no
	// trimming on that side.
	TrimLeft  string
	TrimRight string

	// IgnoreEmptyLines suppresses rows for blank input lines. When false, a
	// blank line produces a Row with zero fields.
	IgnoreEmptyLines bool
}

// Default returns the comma dialect: `"`-quoted fields, `#` comments and
// whitespace trimming on both sides of each unquoted field.
func Default() Dialect {
	return Dialect{
		Delimiters:       ",",
		Quote:            '"',
		Comment:          '#',
		TrimLeft:         " \t\n\r",
		TrimRight:        " \t\n\r",
		IgnoreEmptyLines: true,
	}
}

// Whitespace returns the whitespace-delimited dialect: Default with spaces
// and tabs as delimiters. Because every delimiter is also a right-trim
// character, runs of delimiters collapse and never produce empty fields.
func Whitespace() Dialect {
	d := Default()
	d.Delimiters = " \t"
	return d
}

// Validate reports whether the dialect is a usable configuration.
// It returns a *DialectError describing the first problem found.
func (d Dialect) Validate() error {
	if d.Delimiters == "" {
		return &DialectError{Field: "Delimiters", Message: "at least one delimiter is required"}
	}
	if strings.ContainsAny(d.Delimiters, "\n\r") {
		return &DialectError{Field: "Delimiters", Message: "newline cannot be a delimiter"}
	}
	if d.Quote != 0 {
		if d.Quote == '\n' || d.Quote == '\r' {
			return &DialectError{Field: "Quote", Message: "newline cannot be the quote character"}
		}
		if strings.ContainsRune(d.Delimiters, d.Quote) {
			return &DialectError{Field: "Quote", Message: "quote character collides with a delimiter"}
		}
	}
	if d.Comment != 0 && d.Comment == d.Quote {
		return &DialectError{Field: "Comment", Message: "comment character collides with the quote character"}
	}
	return nil
}

// collapsesDelimiters reports whether consecutive delimiters are
// non-producing: true when every delimiter rune is also a right-trim rune.
// Computed once per parse by the Reader.
func (d Dialect) collapsesDelimiters() bool {
	for _, r := range d.Delimiters {
		if !strings.ContainsRune(d.TrimRight, r) {
			return false
		}
	}
	return true
}

func (d Dialect) isDelimiter(r rune) bool {
	return strings.ContainsRune(d.Delimiters, r)
}

func (d Dialect) isQuote(r rune) bool {
	return d.Quote != 0 && r == d.Quote
}

func (d Dialect) isComment(r rune) bool {
	return d.Comment != 0 && r == d.Comment
}

func (d Dialect) isTrimLeft(r rune) bool {
	return d.TrimLeft != "" && strings.ContainsRune(d.TrimLeft, r)
}

func (d Dialect) trimRight(s string) string {
	if d.TrimRight == "" {
		return s
	}
	return strings.TrimRight(s, d.TrimRight)
}
