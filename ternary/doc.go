// Package ternary converts between balanced-ternary notation and
// signed 64-bit integers.
//
// 🚀 What is balanced ternary?
//
//	A positional base-3 notation whose digits (trits) are -1, 0 and +1,
//	written '-', '0' and '+'. Because the digit set is symmetric, every
//	integer — negative, zero, positive — has exactly one canonical
//	representation and no sign character is needed: "+-" is 2, "-+" is -2.
//
// ✨ Key features:
//   - Parse: text → Ternary with position-reporting errors
//   - Value / CheckedValue: positional decoding with a deterministic
//     overflow policy (panic vs. error)
//   - Encode: canonical encoding, total over all of int64
//   - String: pure rendering, most significant trit first
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numerus/ternary"
//
//	n, err := ternary.Parse("+-0+")
//	if err != nil {
//	  // handle ErrInvalidText
//	}
//	fmt.Println(n.Value()) // 19
//
//	fmt.Println(ternary.Encode(-4)) // "--"
//
// Structurally this is the Roman engine's little sibling: the same
// parse/decode/encode/render surface, minus subtractive pairs and the
// positivity precondition — base 3 keeps all the bookkeeping trivial.
//
// See example_test.go for runnable walkthroughs.
package ternary
