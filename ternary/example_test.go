package ternary_test

import (
	"fmt"

	"github.com/katalvlaran/numerus/ternary"
)

// ExampleParse demonstrates decoding balanced-ternary text.
func ExampleParse() {
	n, err := ternary.Parse("+-0+")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n.Value())
	// Output:
	// 19
}

// ExampleEncode shows that negatives need no sign character:
// the Minus trit carries the sign positionally.
func ExampleEncode() {
	fmt.Println(ternary.Encode(4))
	fmt.Println(ternary.Encode(-4))
	fmt.Println(ternary.Encode(1994))
	// Output:
	// ++
	// --
	// +0-+-0--
}

// ExampleEncode_zero shows that zero is the empty sequence.
func ExampleEncode_zero() {
	n := ternary.Encode(0)
	fmt.Println(n.Len(), n.Value())
	// Output:
	// 0 0
}
