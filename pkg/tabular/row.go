package tabular

// Row is one logical record: the ordered fields of one input line, tagged
// with the 1-based line number on which the row began. Rows spanning several
// input lines (through quoted newlines) keep the line number of their first
// line.
//
// A Row is never modified by the Reader after it has been returned.
type Row struct {
	Fields []string
	Line   int
}
