package output

import (
	"errors"
	"fmt"
)

// Emitter renders (title, value) result pairs to an output sink.
//
// Emitters that frame their output (such as JSON) additionally provide Open
// and Close methods; calling Result outside an Open/Close pair is an error
// for those emitters.
type Emitter interface {
	Result(title string, value any) error
}

var (
	// ErrAlreadyOpen is returned when a framing emitter is opened twice.
	ErrAlreadyOpen = errors.New("output: emitter already open")
	// ErrNotOpen is returned when a framing emitter is used before Open or
	// after Close.
	ErrNotOpen = errors.New("output: emitter not open")
)

// formatValue renders a result value as text. Floats are fixed to six
// decimal places so metric results format stably across platforms.
func formatValue(value any) string {
	switch v := value.(type) {
	case float64:
		return fmt.Sprintf("%.6f", v)
	case float32:
		return fmt.Sprintf("%.6f", v)
	default:
		return fmt.Sprint(v)
	}
}
