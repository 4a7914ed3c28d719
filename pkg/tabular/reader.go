package tabular

import (
	"bufio"
	"io"
)

// State identifies the scanning engine's mode for one consumed rune.
// It is exported only for trace observers; parsing results never depend on
// observing it.
type State int

const (
	// StateStartOfLine is active before any field content on a line.
	StateStartOfLine State = iota
	// StateOutsideField is active between fields, after a delimiter.
	StateOutsideField
	// StateInsideField is active inside an unquoted field.
	StateInsideField
	// StateInsideQuoted is active inside a quoted field.
	StateInsideQuoted
	// StateInsideQuotedQuote is active after a quote seen inside a quoted
	// field; the next rune decides between a doubled quote and a close.
	StateInsideQuotedQuote
	// StateComment is active from a comment character to the end of its line.
	StateComment
)

// String returns a short human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStartOfLine:
		return "start-of-line"
	case StateOutsideField:
		return "outside-field"
	case StateInsideField:
		return "inside-field"
	case StateInsideQuoted:
		return "quoted-field"
	case StateInsideQuotedQuote:
		return "quoted-field-quote"
	case StateComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Reader scans delimiter-separated text one rune at a time and produces Rows.
// It performs a single forward pass with no lookahead and never closes or
// rewinds the underlying stream.
//
// Reader is not safe for concurrent use; each parse owns its scan state
// exclusively.
type Reader struct {
	src      *bufio.Reader
	dialect  Dialect
	collapse bool // every delimiter is a right-trim rune: delimiter runs produce no empty fields

	state      State
	field      []rune
	fields     []string
	rowLine    int
	rowStarted bool

	line   int // 1-based, incremented on every newline rune
	column int // 1-based within the line, reset by newlines
	offset int // 1-based rune index into the whole input

	// position of the quote that opened the current quoted field
	quoteLine   int
	quoteColumn int
	quoteOffset int

	trace TraceFunc
	err   error
}

// NewReader returns a Reader scanning src with the given dialect. The dialect
// is validated up front; content errors are only reported from Read.
func NewReader(src io.Reader, d Dialect) (*Reader, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &Reader{
		src:      bufio.NewReader(src),
		dialect:  d,
		collapse: d.collapsesDelimiters(),
		state:    StateStartOfLine,
		line:     1,
	}, nil
}

// NewReaderNamed is like NewReader but resolves the dialect by its registered
// name. Unknown names are reported as ErrUnknownDialect.
func NewReaderNamed(src io.Reader, name string) (*Reader, error) {
	d, err := LookupDialect(name)
	if err != nil {
		return nil, err
	}
	return NewReader(src, d)
}

// SetTrace installs an observer invoked for every consumed rune with the
// state that was active when the rune was read. Tracing has no effect on
// parsing results. A nil fn disables tracing.
func (r *Reader) SetTrace(fn TraceFunc) {
	r.trace = fn
}

// Read returns the next Row. It returns io.EOF once the input is exhausted
// and a *ParseError on malformed input; parse errors are fatal and are
// returned again by every subsequent call.
func (r *Reader) Read() (Row, error) {
	if r.err != nil {
		return Row{}, r.err
	}
	for {
		ch, _, err := r.src.ReadRune()
		if err == io.EOF {
			return r.finish()
		}
		if err != nil {
			r.err = err
			return Row{}, err
		}

		r.offset++
		r.column++
		newline := ch == '\n' || ch == '\r'

		if r.trace != nil {
			r.trace(r.state, ch)
		}

		row, emitted, err := r.step(ch, newline)

		if newline {
			r.line++
			r.column = 0
		}
		if err != nil {
			r.err = err
			return Row{}, err
		}
		if emitted {
			return row, nil
		}
	}
}

// ReadAll drains the reader, collecting rows until io.EOF.
func (r *Reader) ReadAll() ([]Row, error) {
	var rows []Row
	for {
		row, err := r.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// step advances the state machine by one rune. It reports a completed Row
// when a line-terminating condition occurred.
func (r *Reader) step(ch rune, newline bool) (Row, bool, error) {
	d := &r.dialect

	switch r.state {
	case StateComment:
		if newline {
			r.state = StateStartOfLine
		}

	case StateStartOfLine, StateOutsideField:
		switch {
		case newline:
			if r.state != StateStartOfLine {
				return r.flushRow(), true, nil
			}
			if !d.IgnoreEmptyLines {
				return Row{Fields: []string{}, Line: r.line}, true, nil
			}
		case d.isTrimLeft(ch):
			// discarded between fields
		case r.state == StateStartOfLine && d.isComment(ch):
			r.state = StateComment
		case d.isQuote(ch):
			r.beginRow()
			r.state = StateInsideQuoted
			r.quoteLine, r.quoteColumn, r.quoteOffset = r.line, r.column, r.offset
		case d.isDelimiter(ch):
			r.beginRow()
			r.closeField()
		default:
			r.beginRow()
			r.state = StateInsideField
			r.field = append(r.field, ch)
		}

	case StateInsideField:
		switch {
		case d.isQuote(ch):
			return Row{}, false, r.parseError(ErrUnallowedQuote)
		case newline:
			return r.flushRow(), true, nil
		case d.isDelimiter(ch):
			r.closeField()
		default:
			r.field = append(r.field, ch)
		}

	case StateInsideQuoted:
		// delimiters and newlines are literal inside quotes
		if d.isQuote(ch) {
			r.state = StateInsideQuotedQuote
		} else {
			r.field = append(r.field, ch)
		}

	case StateInsideQuotedQuote:
		switch {
		case d.isQuote(ch):
			// doubled quote: one literal quote character
			r.field = append(r.field, ch)
			r.state = StateInsideQuoted
		case d.isDelimiter(ch):
			r.closeField()
		case newline:
			return r.flushRow(), true, nil
		default:
			return Row{}, false, r.parseError(ErrUnallowedQuote)
		}
	}

	return Row{}, false, nil
}

// beginRow captures the row's starting line the first time any field activity
// happens on a line.
func (r *Reader) beginRow() {
	if !r.rowStarted {
		r.rowStarted = true
		r.rowLine = r.line
	}
}

// closeField completes the pending field: the collected runes are joined,
// right-trimmed unless the field closes out of the doubled-quote state
// (doubled-quote closes preserve trailing content verbatim), and appended to
// the current row.
func (r *Reader) closeField() {
	s := string(r.field)
	if r.state != StateInsideQuotedQuote {
		s = r.dialect.trimRight(s)
	}
	r.fields = append(r.fields, s)
	r.field = r.field[:0]
	r.state = StateOutsideField
}

// flushRow hands the pending row to the caller and resets for the next line.
// In whitespace-collapsing dialects a pending empty trailing field caused by
// trailing delimiters is dropped rather than closed.
func (r *Reader) flushRow() Row {
	if !(r.state == StateOutsideField && r.collapse) {
		r.closeField()
	}
	row := Row{Fields: r.fields, Line: r.rowLine}
	r.fields = nil
	r.field = r.field[:0]
	r.rowStarted = false
	r.state = StateStartOfLine
	return row
}

// finish applies the end-of-stream policy: an open quoted field is an error
// reported at its opening quote; any other pending content is flushed as one
// final row.
func (r *Reader) finish() (Row, error) {
	switch r.state {
	case StateInsideQuoted:
		r.err = &ParseError{
			Line:   r.quoteLine,
			Column: r.quoteColumn,
			Offset: r.quoteOffset,
			Err:    ErrUnclosedQuote,
		}
		return Row{}, r.err
	case StateInsideQuotedQuote, StateOutsideField, StateInsideField:
		return r.flushRow(), nil
	default:
		r.err = io.EOF
		return Row{}, io.EOF
	}
}

// parseError attaches the current scan position to err.
func (r *Reader) parseError(err error) error {
	return &ParseError{Line: r.line, Column: r.column, Offset: r.offset, Err: err}
}
