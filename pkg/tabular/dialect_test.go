package tabular

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	d := Default()
	if d.Delimiters != "," {
		t.Errorf("Delimiters = %q, want %q", d.Delimiters, ",")
	}
	if d.Quote != '"' || d.Comment != '#' {
		t.Errorf("Quote = %q, Comment = %q; want %q, %q", d.Quote, d.Comment, '"', '#')
	}
	if d.TrimLeft != " \t\n\r" || d.TrimRight != " \t\n\r" {
		t.Errorf("trim sets = %q, %q; want both %q", d.TrimLeft, d.TrimRight, " \t\n\r")
	}
	if !d.IgnoreEmptyLines {
		t.Error("IgnoreEmptyLines = false, want true")
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestWhitespace(t *testing.T) {
	d := Whitespace()
	if d.Delimiters != " \t" {
		t.Errorf("Delimiters = %q, want %q", d.Delimiters, " \t")
	}
	// Everything else matches the default dialect.
	if d.Quote != '"' || d.Comment != '#' || d.TrimRight != " \t\n\r" {
		t.Errorf("unexpected preset: %+v", d)
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDialect_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Dialect)
		wantField string
	}{
		{
			name:      "empty delimiter set",
			mutate:    func(d *Dialect) { d.Delimiters = "" },
			wantField: "Delimiters",
		},
		{
			name:      "newline as delimiter",
			mutate:    func(d *Dialect) { d.Delimiters = ",\n" },
			wantField: "Delimiters",
		},
		{
			name:      "quote collides with delimiter",
			mutate:    func(d *Dialect) { d.Quote = ',' },
			wantField: "Quote",
		},
		{
			name:      "newline as quote",
			mutate:    func(d *Dialect) { d.Quote = '\n' },
			wantField: "Quote",
		},
		{
			name:      "comment collides with quote",
			mutate:    func(d *Dialect) { d.Comment = '"' },
			wantField: "Comment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Default()
			tt.mutate(&d)
			err := d.Validate()
			var derr *DialectError
			if !errors.As(err, &derr) {
				t.Fatalf("Validate = %v, want *DialectError", err)
			}
			if derr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", derr.Field, tt.wantField)
			}
		})
	}
}

func TestDialect_CollapsesDelimiters(t *testing.T) {
	if Default().collapsesDelimiters() {
		t.Error("default dialect must not collapse delimiter runs")
	}
	if !Whitespace().collapsesDelimiters() {
		t.Error("whitespace dialect must collapse delimiter runs")
	}

	// A custom dialect collapses iff all delimiters are right-trim runes.
	d := Default()
	d.Delimiters = ",;"
	d.TrimRight = ",; \t"
	if !d.collapsesDelimiters() {
		t.Error("dialect with delimiters inside TrimRight must collapse")
	}
	d.TrimRight = ", \t"
	if d.collapsesDelimiters() {
		t.Error("dialect with a delimiter outside TrimRight must not collapse")
	}
}

func TestDialect_NoTrimming(t *testing.T) {
	d := Default()
	d.TrimLeft = ""
	d.TrimRight = ""

	rows := readAllRows(t, " a , b \n", d)
	want := [][]string{{" a ", " b "}}
	if got := fieldsOf(rows); !equalFields(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestDialect_MultipleDelimiters(t *testing.T) {
	d := Default()
	d.Delimiters = ",;"

	rows := readAllRows(t, "a;b,c\n", d)
	want := [][]string{{"a", "b", "c"}}
	if got := fieldsOf(rows); !equalFields(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}
