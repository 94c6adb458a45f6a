package bigint

import (
	"math/bits"

	"github.com/oisee/bigint/internal/bigint/bigerr"
	"github.com/oisee/bigint/internal/telemetry"
)

// Div computes q = a // b and r = a mod b for non-negative a and
// positive b. Returns bigerr.ErrDivisionByZero if b is zero.
func Div(a, b, q, r *Bigint) error {
	return DivTraced(a, b, q, r, nil)
}

// DivTraced is Div with an optional telemetry.Logger that records
// Knuth Algorithm D quotient-digit repair steps; a nil logger records
// nothing. Div calls this with a nil logger, and the core ABI entry
// points and CLI tools call Div, so the library stays silent by default
// (SPEC_FULL.md §4.9).
func DivTraced(a, b, q, r *Bigint, logger *telemetry.Logger) error {
	bl := b.Limbs()
	if len(bl) == 0 {
		return bigerr.ErrDivisionByZero
	}

	if Cmp(a, b) < 0 {
		q.setFrom(nil)
		r.setFrom(clone(a))
		return nil
	}

	al := a.Limbs()
	if len(bl) == 1 {
		qw, rem := shortDiv(al, bl[0])
		q.setFrom(trimWords(qw))
		r.setFrom(trimWords([]Word{rem}))
		return nil
	}

	qw, rw := longDivKnuth(al, bl, logger)
	q.setFrom(trimWords(qw))
	r.setFrom(trimWords(rw))
	return nil
}

// shortDiv divides the limb vector x by the single non-zero limb y,
// from the most significant limb down, using bits.Div64 as the
// double-width (2-by-1 limb) accumulator.
func shortDiv(x []Word, y Word) (q []Word, r Word) {
	q = make([]Word, len(x))
	var rem Word
	for i := len(x) - 1; i >= 0; i-- {
		q[i], rem = bits.Div64(rem, x[i], y)
	}
	return q, rem
}

// longDivKnuth implements Knuth's Algorithm D (TAOCP Vol. 2, §4.3.1) for
// len(y) >= 2, structured after math/big's nat.divLarge: normalize so
// the divisor's top bit is set, estimate each quotient limb from a
// 2-by-1 limb division, correct the estimate against the divisor's
// second-highest limb, multiply-subtract, and repair on underflow.
func longDivKnuth(x, y []Word, logger *telemetry.Logger) (q, r []Word) {
	n := len(y)
	m := len(x) - n

	shift := uint(bits.LeadingZeros64(y[n-1]))

	vn := make([]Word, n)
	shiftLeftWords(vn, y, shift)

	u := make([]Word, len(x)+1)
	u[len(x)] = shiftLeftWords(u[:len(x)], x, shift)

	q = make([]Word, m+1)
	vn1 := vn[n-1]
	vn2 := vn[n-2]

	for j := m; j >= 0; j-- {
		var qhat, rhat Word
		ujn := u[j+n]
		if ujn == vn1 {
			qhat = ^Word(0)
		} else {
			qhat, rhat = bits.Div64(ujn, u[j+n-1], vn1)

			x1, x2 := bits.Mul64(qhat, vn2)
			ujn2 := u[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prevRhat := rhat
				rhat += vn1
				if rhat < prevRhat {
					// rhat overflowed past B: further decrements of
					// qhat can't be justified, stop correcting.
					break
				}
				x1, x2 = bits.Mul64(qhat, vn2)
			}
		}

		qhatv := make([]Word, n+1)
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat)

		borrow := subVVInPlace(u[j:j+n+1], qhatv)
		if borrow != 0 {
			logger.DivRepair(j)
			qhat--
			carry := addVVInPlace(u[j:j+n], vn)
			u[j+n] += carry
		}

		q[j] = qhat
	}

	r = make([]Word, n)
	shiftRightWords(r, u[:n], shift)
	return q, r
}

// greaterThan reports whether the double-limb value x1:x2 (x1 as the
// high limb) is strictly greater than y1:y2.
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || (x1 == y1 && x2 > y2)
}

// shiftLeftWords left-shifts src by shift bits (0 <= shift < WordBits)
// into dst (same length as src) and returns the bits shifted out past
// the top limb.
func shiftLeftWords(dst, src []Word, shift uint) Word {
	if shift == 0 {
		copy(dst, src)
		return 0
	}
	var carry Word
	for i, w := range src {
		dst[i] = (w << shift) | carry
		carry = w >> (WordBits - shift)
	}
	return carry
}

// shiftRightWords right-shifts src by shift bits (0 <= shift < WordBits)
// into dst (same length as src); bits shifted off the low end are
// discarded.
func shiftRightWords(dst, src []Word, shift uint) {
	if shift == 0 {
		copy(dst, src)
		return
	}
	var carry Word
	for i := len(src) - 1; i >= 0; i-- {
		dst[i] = (src[i] >> shift) | carry
		carry = src[i] << (WordBits - shift)
	}
}

// subVVInPlace computes z -= y limb-wise (z and y the same length) and
// returns the final borrow.
func subVVInPlace(z, y []Word) Word {
	var borrow uint64
	for i := range z {
		z[i], borrow = bits.Sub64(z[i], y[i], borrow)
	}
	return Word(borrow)
}

// addVVInPlace computes z += y limb-wise (z and y the same length) and
// returns the final carry.
func addVVInPlace(z, y []Word) Word {
	var carry uint64
	for i := range z {
		z[i], carry = bits.Add64(z[i], y[i], carry)
	}
	return Word(carry)
}
