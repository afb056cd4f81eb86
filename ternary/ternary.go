// Package ternary implements bidirectional conversion between
// balanced-ternary trit sequences and 64-bit signed integers.
package ternary

import (
	"fmt"
	"math"
	"strings"
)

// Ternary is an owned, ordered sequence of Trits, most significant
// first. The zero value is an empty Ternary, which decodes to 0.
type Ternary struct {
	trits []Trit
}

// New builds a Ternary from an explicit trit sequence.
// The input slice is copied; the Ternary owns its backing storage.
func New(trits ...Trit) Ternary {
	owned := make([]Trit, len(trits))
	copy(owned, trits)
	return Ternary{trits: owned}
}

// Parse converts text into a Ternary, one Trit per character,
// preserving input order.
//
// The first character outside {'-', '0', '+'} fails the whole parse:
// Parse returns ErrInvalidText wrapped with the byte offset and rune,
// and no partial sequence. Empty input yields an empty Ternary.
func Parse(text string) (Ternary, error) {
	trits := make([]Trit, 0, len(text))
	for i, r := range text {
		t, ok := FromChar(r)
		if !ok {
			return Ternary{}, fmt.Errorf("%w: %q at position %d", ErrInvalidText, r, i)
		}
		trits = append(trits, t)
	}
	return Ternary{trits: trits}, nil
}

// Len reports the number of trits in the sequence.
func (n Ternary) Len() int { return len(n.trits) }

// Trits returns a copy of the underlying trit sequence.
func (n Ternary) Trits() []Trit {
	out := make([]Trit, len(n.trits))
	copy(out, n.trits)
	return out
}

// Value decodes the sequence into its integer value by the positional
// fold total = total*3 + weight, left to right. An empty sequence
// decodes to 0.
//
// If the total ever leaves the int64 domain, Value panics with
// ErrOverflow; the panic is deterministic in every build mode.
// Use CheckedValue to receive the overflow as an error instead.
func (n Ternary) Value() int64 {
	v, err := n.CheckedValue()
	if err != nil {
		panic(err)
	}
	return v
}

// CheckedValue decodes the sequence like Value, but both the base
// shift and the digit addition of every step are checked against the
// int64 domain. On overflow it returns ErrOverflow and a zero value.
func (n Ternary) CheckedValue() (int64, error) {
	var total int64
	for _, t := range n.trits {
		w := t.Weight()
		// total*3+w stays in domain iff total ∈ [low, MaxInt64/3];
		// the lower bound loosens by one when the digit is +1
		// (MinInt64 itself ends on a Plus trit).
		low := int64(math.MinInt64) / 3
		if w > 0 {
			low--
		}
		if total > math.MaxInt64/3 || total < low {
			return 0, ErrOverflow
		}
		// exact under two's complement once the bound check passed
		total = total*3 + w
	}
	return total, nil
}

// Encode constructs the canonical Ternary for any value. Unlike Roman
// notation there is no precondition: zero encodes to the empty
// sequence and negative values encode without a sign character.
//
// Each step takes the remainder mod 3, normalized into {-1, 0, +1}
// (a remainder of 2 becomes -1 with a carry), emits the trit, and
// divides by 3. Trits come out least significant first and are
// reversed at the end. The output has no leading Zero.
func Encode(value int64) Ternary {
	trits := make([]Trit, 0, 41) // 3^40 < 2^63 < 3^41
	for value != 0 {
		switch r := value % 3; r {
		case 0:
			trits = append(trits, Zero)
			value /= 3
		case 1, -2:
			trits = append(trits, Plus)
			// (value-1)/3 without forming value-1, which would wrap
			// at MinInt64; truncating division already yields it for
			// r == 1, and is one too high for r == -2.
			value /= 3
			if r == -2 {
				value--
			}
		default: // 2 or -1
			trits = append(trits, Minus)
			value = (value + 1) / 3
		}
	}
	// reverse in-place: most significant trit first
	for l, r := 0, len(trits)-1; l < r; l, r = l+1, r-1 {
		trits[l], trits[r] = trits[r], trits[l]
	}
	return Ternary{trits: trits}
}

// String renders the sequence, one character per trit, most
// significant first. No separators, no sign.
func (n Ternary) String() string {
	var b strings.Builder
	b.Grow(len(n.trits))
	for _, t := range n.trits {
		b.WriteByte(t.Char())
	}
	return b.String()
}
