// Package tabular provides a streaming, character-level reader for
// delimiter-separated text with configurable dialects.
//
// It generalizes CSV parsing: the delimiter is a set of characters rather than
// a single rune, comment lines can be skipped, and each unquoted field can be
// trimmed on either side. When every delimiter character is also a right-trim
// character (the built-in "whitespace" dialect), runs of delimiters collapse,
// so two adjacent spaces never produce an empty field.
//
// The reader consumes its input one rune at a time in a single forward pass
// and hands out rows as soon as they are complete, so arbitrarily large inputs
// can be processed without buffering.
//
// # Dialects
//
// A Dialect is a plain configuration value. Two presets are provided and
// registered by name:
//
//	r, err := tabular.NewReader(src, tabular.Default())
//	r, err := tabular.NewReaderNamed(src, "whitespace")
//
// # Reading
//
// Rows are pulled one at a time; io.EOF signals exhaustion:
//
//	for {
//	    row, err := r.Read()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle *ParseError
//	    }
//	    fmt.Println(row.Line, row.Fields)
//	}
//
// Malformed input produces a *ParseError carrying the exact line, column and
// rune offset of the offending character, wrapping one of the sentinel errors
// ErrUnallowedQuote or ErrUnclosedQuote.
//
// # Thread safety
//
// Each Reader owns its scan state exclusively. Readers over independent
// streams are fully independent and may run in parallel without coordination.
package tabular
