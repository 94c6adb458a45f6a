package bigint

import (
	"math/bits"

	"github.com/oisee/bigint/internal/bigint/bigerr"
)

// Add computes dst = a + b. Destination length is max(len_a, len_b) + 1
// before trimming; the carry chain uses bits.Add64 as the W-wide
// arithmetic-with-carry primitive, the idiomatic Go stand-in for the C
// engine's double-width accumulator on a single limb sum.
func Add(a, b *Bigint, dst *Bigint) {
	al, bl := a.Limbs(), b.Limbs()
	n := len(al)
	if len(bl) > n {
		n = len(bl)
	}
	w := make([]Word, n+1)

	var carry uint64
	for i := 0; i < n; i++ {
		var x, y Word
		if i < len(al) {
			x = al[i]
		}
		if i < len(bl) {
			y = bl[i]
		}
		w[i], carry = bits.Add64(x, y, carry)
	}
	w[n] = carry

	dst.setFrom(trimWords(w))
}

// Sub computes dst = a - b. Precondition: a >= b. Destination length is
// len_a before trimming. Violating the precondition returns
// bigerr.ErrUnderflow and leaves dst unmodified; tests exercise this as
// an explicit error case (SPEC_FULL.md §4.4).
func Sub(a, b *Bigint, dst *Bigint) error {
	if Cmp(a, b) < 0 {
		return bigerr.ErrUnderflow
	}

	al, bl := a.Limbs(), b.Limbs()
	w := make([]Word, len(al))

	var borrow uint64
	for i := 0; i < len(al); i++ {
		var y Word
		if i < len(bl) {
			y = bl[i]
		}
		w[i], borrow = bits.Sub64(al[i], y, borrow)
	}

	dst.setFrom(trimWords(w))
	return nil
}
