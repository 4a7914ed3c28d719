package tabular

import (
	"fmt"
	"io"
)

// TraceFunc observes every rune the Reader consumes, together with the state
// that was active when the rune was read. Observers must not retain state
// across parses and cannot influence parsing results.
type TraceFunc func(state State, r rune)

// DebugTrace returns a TraceFunc that echoes each consumed rune to w, one per
// line, annotated with its scanning state. Control characters are shown as
// their Control Pictures equivalents (U+2400 block) so newlines and tabs stay
// visible.
func DebugTrace(w io.Writer) TraceFunc {
	return func(state State, r rune) {
		fmt.Fprintf(w, "%-18s %c\n", state, debugRune(r))
	}
}

// debugRune maps ASCII and Latin-1 control characters to printable
// Control Pictures runes.
func debugRune(r rune) rune {
	if (r >= 0x00 && r <= 0x1f) || (r >= 0x7f && r <= 0x9f) {
		return 0x2400 | r
	}
	return r
}
