package output

import (
	"fmt"
	"io"
	"strings"
)

// ReStructuredText emits each result as a reStructuredText section: the title
// underlined with '=', a blank line, then the value.
type ReStructuredText struct {
	w io.Writer
}

// NewReStructuredText returns an emitter writing reStructuredText to w.
func NewReStructuredText(w io.Writer) *ReStructuredText {
	return &ReStructuredText{w: w}
}

// Result writes one titled section.
func (o *ReStructuredText) Result(title string, value any) error {
	_, err := fmt.Fprintf(o.w, "%s\n%s\n\n%s\n\n",
		title, strings.Repeat("=", len(title)), formatValue(value))
	return err
}
