package roman_test

import (
	"fmt"

	"github.com/katalvlaran/numerus/roman"
)

// ExampleParse demonstrates decoding a year from text.
// Parsing is case-insensitive; decoding follows the subtractive
// convention (CM is 900, XC is 90, IV is 4).
func ExampleParse() {
	n, err := roman.Parse("mcmxciv")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n.Value())
	// Output:
	// 1994
}

// ExampleEncode demonstrates canonical encoding and both renderings.
func ExampleEncode() {
	n, err := roman.Encode(134)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n.Upper())
	fmt.Println(n.Lower())
	// Output:
	// CXXXIV
	// cxxxiv
}

// ExampleEncode_nonPositive shows the recoverable precondition error:
// the notation has no symbol for zero or negative values.
func ExampleEncode_nonPositive() {
	_, err := roman.Encode(0)
	fmt.Println(err)
	// Output:
	// roman: value must be strictly positive: got 0
}

// ExampleNumeral_CheckedValue shows overflow detection on a sequence
// whose true value exceeds the 16-bit domain.
func ExampleNumeral_CheckedValue() {
	// Thirty-three M symbols: 33000, just past MaxInt16 (32767).
	symbols := make([]roman.Symbol, 33)
	for i := range symbols {
		symbols[i] = roman.M
	}
	n := roman.New(symbols...)

	if _, err := n.CheckedValue(); err != nil {
		fmt.Println(err)
	}
	// Output:
	// roman: value exceeds the int16 domain
}
