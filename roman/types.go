// Package roman defines the numeral symbol table and sentinel errors
// for Roman-numeral conversion.
package roman

import "errors"

// Sentinel errors for roman operations.
var (
	// ErrInvalidText is returned by Parse when a character has no symbol mapping.
	ErrInvalidText = errors.New("roman: not a valid numeral character")

	// ErrNonPositive is returned by Encode for zero or negative input;
	// the notation has no symbol for zero or negatives.
	ErrNonPositive = errors.New("roman: value must be strictly positive")

	// ErrOverflow indicates an accumulated value outside the int16 domain.
	// CheckedValue returns it; Value panics with it.
	ErrOverflow = errors.New("roman: value exceeds the int16 domain")
)

// Symbol is one of the seven atomic Roman numeral symbols.
// A Symbol carries no position information; its contribution to a
// numeral's value depends on the symbols that follow it.
type Symbol uint8

const (
	// I weighs 1.
	I Symbol = iota
	// V weighs 5.
	V
	// X weighs 10.
	X
	// L weighs 50.
	L
	// C weighs 100.
	C
	// D weighs 500.
	D
	// M weighs 1000.
	M
)

// Case selects the character set used when rendering a Symbol.
type Case int

const (
	// Uppercase renders symbols as 'I'..'M'.
	Uppercase Case = iota
	// Lowercase renders symbols as 'i'..'m'.
	Lowercase
)

// Weight returns the fixed integer weight of s:
// I=1, V=5, X=10, L=50, C=100, D=500, M=1000.
func (s Symbol) Weight() int16 {
	switch s {
	case I:
		return 1
	case V:
		return 5
	case X:
		return 10
	case L:
		return 50
	case C:
		return 100
	case D:
		return 500
	case M:
		return 1000
	}
	return 0 // unreachable for valid symbols
}

// Char returns the ASCII character for s in the requested case.
func (s Symbol) Char(c Case) byte {
	const upper = "IVXLCDM"
	const lower = "ivxlcdm"
	if c == Lowercase {
		return lower[s]
	}
	return upper[s]
}

// FromChar maps a single character to its Symbol.
// Both upper- and lowercase ASCII letters are accepted;
// ok is false for any other rune.
func FromChar(r rune) (s Symbol, ok bool) {
	switch r {
	case 'I', 'i':
		return I, true
	case 'V', 'v':
		return V, true
	case 'X', 'x':
		return X, true
	case 'L', 'l':
		return L, true
	case 'C', 'c':
		return C, true
	case 'D', 'd':
		return D, true
	case 'M', 'm':
		return M, true
	}
	return 0, false
}
