package output

import (
	"encoding/csv"
	"io"
)

// CSV emits each result as one title,value record, quoted and escaped per
// RFC 4180 by encoding/csv.
type CSV struct {
	w *csv.Writer
}

// NewCSV returns an emitter writing CSV records to w.
func NewCSV(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

// Result writes one record and flushes it so rows reach the sink as soon as
// they are produced.
func (o *CSV) Result(title string, value any) error {
	if err := o.w.Write([]string{title, formatValue(value)}); err != nil {
		return err
	}
	o.w.Flush()
	return o.w.Error()
}
