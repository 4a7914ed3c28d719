package output

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON emits results as a single JSON object, one "title": value member per
// line. The object framing is written by Open and Close, so the emitter must
// be opened before the first Result and closed after the last:
//
//	j := output.NewJSON(w)
//	if err := j.Open(); err != nil { ... }
//	defer j.Close()
//	j.Result("wer", 0.25)
type JSON struct {
	w      io.Writer
	opened bool
	count  int
}

// NewJSON returns an emitter writing a JSON object to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Open writes the opening brace. Opening an already open emitter returns
// ErrAlreadyOpen.
func (o *JSON) Open() error {
	if o.opened {
		return ErrAlreadyOpen
	}
	if _, err := fmt.Fprint(o.w, "{\n"); err != nil {
		return err
	}
	o.opened = true
	o.count = 0
	return nil
}

// Result writes one object member. Titles and values are JSON-encoded;
// values that cannot be encoded are reported as an error.
func (o *JSON) Result(title string, value any) error {
	if !o.opened {
		return ErrNotOpen
	}
	key, err := json.MarshalToString(title)
	if err != nil {
		return err
	}
	val, err := json.MarshalToString(value)
	if err != nil {
		return err
	}
	sep := ""
	if o.count > 0 {
		sep = ",\n"
	}
	o.count++
	_, err = fmt.Fprintf(o.w, "%s\t%s: %s", sep, key, val)
	return err
}

// Close writes the closing brace. Closing an emitter that is not open
// returns ErrNotOpen.
func (o *JSON) Close() error {
	if !o.opened {
		return ErrNotOpen
	}
	o.opened = false
	_, err := fmt.Fprint(o.w, "\n}\n")
	return err
}
