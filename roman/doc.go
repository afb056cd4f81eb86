// Package roman converts between Roman numerals and signed 16-bit
// integers, using the classical subtractive-pair convention.
//
// 🚀 What is a Roman numeral, to this package?
//
//	An ordered sequence of the seven symbols I, V, X, L, C, D, M.
//	Order is the encoding: "IV" is 4, "VI" is 6. Decoding accepts
//	*any* sequence, canonical or not — a pathological "IIV" still
//	decodes mechanically, it is simply not what Encode would produce.
//
// ✨ Key features:
//   - Parse: case-insensitive text → Numeral, position-reporting errors
//   - Value / CheckedValue: reverse-scan subtractive decoding,
//     with a deterministic overflow policy (panic vs. error)
//   - Encode: greedy canonical encoding with subtractive lookahead
//   - Upper / Lower: pure, idempotent rendering
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numerus/roman"
//
//	n, err := roman.Parse("MCMXCIV")
//	if err != nil {
//	  // handle ErrInvalidText
//	}
//	fmt.Println(n.Value()) // 1994
//
//	m, _ := roman.Encode(134)
//	fmt.Println(m.Upper(), m.Lower()) // CXXXIV cxxxiv
//
// Performance:
//
//   - Time:   O(len) for every operation
//   - Memory: O(len) for the owned symbol sequence
//
// See example_test.go for runnable walkthroughs.
package roman
