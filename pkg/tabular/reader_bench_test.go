package tabular

import (
	"io"
	"strings"
	"testing"
)

func benchmarkRead(b *testing.B, input string, d Dialect) {
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		r, err := NewReader(strings.NewReader(input), d)
		if err != nil {
			b.Fatal(err)
		}
		for {
			_, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkRead_Plain(b *testing.B) {
	row := "alpha,beta,gamma,delta,epsilon\n"
	benchmarkRead(b, strings.Repeat(row, 1000), Default())
}

func BenchmarkRead_Quoted(b *testing.B) {
	row := "\"alpha, beta\",\"gam\"\"ma\",delta\n"
	benchmarkRead(b, strings.Repeat(row, 1000), Default())
}

func BenchmarkRead_Whitespace(b *testing.B) {
	row := "alpha   beta\tgamma  delta\n"
	benchmarkRead(b, strings.Repeat(row, 1000), Whitespace())
}
