// Package roman implements bidirectional conversion between Roman
// numeral sequences and 16-bit signed integers: parsing, subtractive
// decoding (checked and unchecked), canonical greedy encoding, and
// case-selectable rendering.
package roman

import (
	"fmt"
	"math"
	"strings"
)

// Numeral is an owned, ordered sequence of Symbols.
// Insertion order is the positional encoding; a Numeral imposes no
// canonicality constraint on the sequence it holds. The zero value is
// an empty Numeral, which decodes to 0.
type Numeral struct {
	symbols []Symbol
}

// New builds a Numeral from an explicit symbol sequence.
// The input slice is copied; the Numeral owns its backing storage.
func New(symbols ...Symbol) Numeral {
	owned := make([]Symbol, len(symbols))
	copy(owned, symbols)
	return Numeral{symbols: owned}
}

// Parse converts text into a Numeral, one Symbol per character,
// preserving input order. Input is case-insensitive.
//
// The first character without a symbol mapping fails the whole parse:
// Parse returns ErrInvalidText wrapped with the byte offset and rune,
// and no partial sequence. Empty input yields an empty Numeral.
func Parse(text string) (Numeral, error) {
	symbols := make([]Symbol, 0, len(text))
	for i, r := range text {
		s, ok := FromChar(r)
		if !ok {
			return Numeral{}, fmt.Errorf("%w: %q at position %d", ErrInvalidText, r, i)
		}
		symbols = append(symbols, s)
	}
	return Numeral{symbols: symbols}, nil
}

// Len reports the number of symbols in the sequence.
func (n Numeral) Len() int { return len(n.symbols) }

// Symbols returns a copy of the underlying symbol sequence.
func (n Numeral) Symbols() []Symbol {
	out := make([]Symbol, len(n.symbols))
	copy(out, n.symbols)
	return out
}

// Value decodes the sequence into its integer value.
//
// Algorithm (subtractive decoding):
//  1. Scan the symbols in reverse order, rightmost first.
//  2. Keep a running total and the maximum weight seen so far (max=0).
//  3. A symbol whose weight w ≥ max adds w to the total;
//     a lighter symbol subtracts w (the subtractive convention).
//  4. max is raised to w whenever w exceeds it.
//
// Any sequence decodes, canonical or not; the total may be negative.
// An empty sequence decodes to 0.
//
// If the running total ever leaves the int16 domain, Value panics with
// ErrOverflow. The panic is deterministic: unlike wrap-on-release
// arithmetic, the outcome does not depend on build mode. Use
// CheckedValue to receive the overflow as an error instead.
func (n Numeral) Value() int16 {
	v, err := n.CheckedValue()
	if err != nil {
		panic(err)
	}
	return v
}

// CheckedValue decodes the sequence like Value, but every addition and
// subtraction is checked against the int16 domain. On overflow it
// returns ErrOverflow and a zero value instead of corrupting the total.
func (n Numeral) CheckedValue() (int16, error) {
	// Accumulate in a wide int; single steps are at most ±1000, so the
	// accumulator itself cannot overflow before the bound check fires.
	var total, maxSeen int
	for i := len(n.symbols) - 1; i >= 0; i-- {
		w := int(n.symbols[i].Weight())
		if w >= maxSeen {
			total += w
			maxSeen = w
		} else {
			total -= w
		}
		if total > math.MaxInt16 || total < math.MinInt16 {
			return 0, ErrOverflow
		}
	}
	return int16(total), nil
}

// subtractivePairs lists the six (secondary, primary) weight pairs the
// encoder considers, largest primary first. Writing secondary
// immediately before primary denotes primary-secondary: CM is 900.
var subtractivePairs = [6][2]Symbol{
	{C, M}, {C, D},
	{X, C}, {X, L},
	{I, X}, {I, V},
}

// Encode constructs the canonical Numeral for a strictly positive
// value. Zero and negative inputs return ErrNonPositive: the notation
// has no zero or negative symbol.
//
// Algorithm (greedy with subtractive lookahead), per pair:
//  1. While the remainder covers the primary's weight, append the
//     primary and subtract it (handles runs of M, C, X).
//  2. If the remainder covers primary-secondary, append the
//     subtractive pair and subtract the difference (CM, CD, XC, ...).
//
// After the last pair (I,V) the remainder is below 4 and is emitted as
// repetitions of I. Values beyond 3999 simply begin with a run of M —
// long, but valid: the notation has no compact form up there.
func Encode(value int16) (Numeral, error) {
	if value <= 0 {
		return Numeral{}, fmt.Errorf("%w: got %d", ErrNonPositive, value)
	}

	remaining := int(value)
	symbols := make([]Symbol, 0, remaining/1000+8)
	for _, pair := range subtractivePairs {
		secondary, primary := pair[0], pair[1]

		for remaining >= int(primary.Weight()) {
			remaining -= int(primary.Weight())
			symbols = append(symbols, primary)
		}

		difference := int(primary.Weight() - secondary.Weight())
		if remaining >= difference {
			remaining -= difference
			symbols = append(symbols, secondary, primary)
		}
	}
	for ; remaining > 0; remaining-- {
		symbols = append(symbols, I)
	}

	return Numeral{symbols: symbols}, nil
}

// render maps every symbol through the table in sequence order.
// No separators, no grouping.
func (n Numeral) render(c Case) string {
	var b strings.Builder
	b.Grow(len(n.symbols))
	for _, s := range n.symbols {
		b.WriteByte(s.Char(c))
	}
	return b.String()
}

// Upper renders the sequence with uppercase symbol characters.
func (n Numeral) Upper() string { return n.render(Uppercase) }

// Lower renders the sequence with lowercase symbol characters.
func (n Numeral) Lower() string { return n.render(Lowercase) }

// String implements fmt.Stringer; it is the uppercase rendering.
func (n Numeral) String() string { return n.Upper() }
