// Package ternary defines the trit table and sentinel errors for
// balanced-ternary conversion.
package ternary

import "errors"

// Sentinel errors for ternary operations.
var (
	// ErrInvalidText is returned by Parse when a character is not a trit.
	ErrInvalidText = errors.New("ternary: not a valid trit character")

	// ErrOverflow indicates an accumulated value outside the int64 domain.
	// CheckedValue returns it; Value panics with it.
	ErrOverflow = errors.New("ternary: value exceeds the int64 domain")
)

// Trit is one balanced-ternary digit. Unlike ordinary base 3, the
// digit set is {-1, 0, +1}, which lets the notation represent negative
// numbers without a sign.
type Trit int8

const (
	// Minus weighs -1, written '-'.
	Minus Trit = iota - 1
	// Zero weighs 0, written '0'.
	Zero
	// Plus weighs +1, written '+'.
	Plus
)

// Weight returns the digit value of t: -1, 0, or +1.
func (t Trit) Weight() int64 { return int64(t) }

// Char returns the ASCII character for t: '-', '0', or '+'.
func (t Trit) Char() byte {
	switch t {
	case Minus:
		return '-'
	case Plus:
		return '+'
	}
	return '0'
}

// FromChar maps a single character to its Trit;
// ok is false for any rune outside {'-', '0', '+'}.
func FromChar(r rune) (t Trit, ok bool) {
	switch r {
	case '-':
		return Minus, true
	case '0':
		return Zero, true
	case '+':
		return Plus, true
	}
	return Zero, false
}
