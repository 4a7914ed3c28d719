package output

import (
	"fmt"
	"io"
)

// Markdown emits each result as a Markdown section: a level-one heading with
// the title, a blank line, then the value.
type Markdown struct {
	w io.Writer
}

// NewMarkdown returns an emitter writing Markdown to w.
func NewMarkdown(w io.Writer) *Markdown {
	return &Markdown{w: w}
}

// Result writes one titled section.
func (o *Markdown) Result(title string, value any) error {
	_, err := fmt.Fprintf(o.w, "# %s\n\n%s\n\n", title, formatValue(value))
	return err
}
