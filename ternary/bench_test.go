package ternary_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numerus/ternary"
)

// BenchmarkEncode_Small benchmarks encoding of a short value.
func BenchmarkEncode_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ternary.Encode(19)
	}
}

// BenchmarkEncode_Max benchmarks the longest encoding (41 trits).
func BenchmarkEncode_Max(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = ternary.Encode(math.MaxInt64)
	}
}

// BenchmarkValue benchmarks positional decoding of a 41-trit sequence.
func BenchmarkValue(b *testing.B) {
	n := ternary.Encode(math.MaxInt64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Value()
	}
}

// BenchmarkParse benchmarks character-to-trit parsing.
func BenchmarkParse(b *testing.B) {
	text := ternary.Encode(math.MaxInt64).String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ternary.Parse(text); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
