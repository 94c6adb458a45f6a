package bigint

import "math/bits"

// MulClassic computes dst = a * b using schoolbook (grade-school)
// multiplication: for each limb of b, a fused multiply-add-with-carry
// pass accumulates a*b_j, shifted by j limbs, into the running result.
// Destination length is len_a + len_b before trimming.
func MulClassic(a, b *Bigint, dst *Bigint) {
	dst.setFrom(trimWords(classicMul(a.Limbs(), b.Limbs())))
}

// classicMul returns the untrimmed product of x and y, length
// len(x)+len(y).
func classicMul(x, y []Word) []Word {
	z := make([]Word, len(x)+len(y))
	if len(x) == 0 || len(y) == 0 {
		return z
	}
	for j, yj := range y {
		if yj == 0 {
			continue
		}
		z[j+len(x)] = mulAddVWW(z[j:j+len(x)], x, yj)
	}
	return z
}

// mulAddVWW computes z[i] = x[i]*y + z[i] + carry for each i, with the
// carry chain propagated via a 128-bit bits.Mul64/bits.Add64 pair — the
// idiomatic Go equivalent of the C engine's W*2 accumulator. It returns
// the final carry limb, which the caller stores one position past
// z[len(x)-1].
func mulAddVWW(z, x []Word, y Word) Word {
	var carry Word
	for i, xi := range x {
		hi, lo := bits.Mul64(xi, y)
		lo, c := bits.Add64(lo, z[i], 0)
		hi += c
		lo, c = bits.Add64(lo, carry, 0)
		hi += c
		z[i] = lo
		carry = hi
	}
	return carry
}

// addWords adds two limb vectors (trimmed or not) and returns an
// untrimmed result of length max(len(x),len(y))+1, used by Karatsuba to
// form x_lo+x_hi and y_lo+y_hi.
func addWords(x, y []Word) []Word {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	z := make([]Word, n+1)
	var carry uint64
	for i := 0; i < n; i++ {
		var xi, yi Word
		if i < len(x) {
			xi = x[i]
		}
		if i < len(y) {
			yi = y[i]
		}
		z[i], carry = bits.Add64(xi, yi, carry)
	}
	z[n] = carry
	return z
}

// subWords computes x - y for x >= y (in canonical-comparison terms;
// callers here only ever call it where that holds) and returns an
// untrimmed result of length len(x).
func subWords(x, y []Word) []Word {
	z := make([]Word, len(x))
	var borrow uint64
	for i := range x {
		var yi Word
		if i < len(y) {
			yi = y[i]
		}
		z[i], borrow = bits.Sub64(x[i], yi, borrow)
	}
	return z
}

// addShifted adds y, shifted left by shift limbs, into acc (which must
// already be long enough), in place, propagating the carry as far as
// needed.
func addShifted(acc, y []Word, shift int) {
	var carry uint64
	i := 0
	for ; i < len(y); i++ {
		acc[shift+i], carry = bits.Add64(acc[shift+i], y[i], carry)
	}
	for carry != 0 {
		acc[shift+i], carry = bits.Add64(acc[shift+i], 0, carry)
		i++
	}
}

// KaratsubaThreshold is the default operand length, in limbs, below
// which MulKaratsuba defers to the classic algorithm. Overridable per
// call via MulKaratsubaTuned; see internal/config.Tuning.
const KaratsubaThreshold = 32

// MulKaratsuba computes dst = a * b using the recursive Karatsuba
// algorithm at the package default threshold (SPEC_FULL.md §4.5).
func MulKaratsuba(a, b *Bigint, dst *Bigint) {
	MulKaratsubaTuned(a, b, dst, KaratsubaThreshold)
}

// MulKaratsubaTuned is MulKaratsuba with an explicit recursion
// threshold, used by the CLI tools to honor internal/config.Tuning.
func MulKaratsubaTuned(a, b *Bigint, dst *Bigint, threshold int) {
	dst.setFrom(trimWords(karatsubaMul(a.Limbs(), b.Limbs(), threshold)))
}

// karatsubaMul returns the untrimmed product of x and y via recursive
// Karatsuba multiplication, bottoming out at classicMul below
// threshold limbs:
//
//	x = x_hi*B^m + x_lo,  y = y_hi*B^m + y_lo,  B = 2^WordBits
//	z0 = x_lo*y_lo
//	z2 = x_hi*y_hi
//	z1 = (x_lo+x_hi)*(y_lo+y_hi) - z0 - z2
//	result = z2*B^(2m) + z1*B^m + z0
//
// z1's subtraction never underflows because
// (x_lo+x_hi)*(y_lo+y_hi) >= z0 + z2.
func karatsubaMul(x, y []Word, threshold int) []Word {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n < threshold || n < 2 {
		return classicMul(x, y)
	}

	m := (n + 1) / 2

	xLo, xHi := splitAt(x, m)
	yLo, yHi := splitAt(y, m)

	z0 := karatsubaMul(xLo, yLo, threshold)
	z2 := karatsubaMul(xHi, yHi, threshold)

	// The sums are trimmed so the recursion always works on shorter
	// operands than x and y, even at thresholds of 1 or 2 limbs.
	xSum := trimWords(addWords(xLo, xHi))
	ySum := trimWords(addWords(yLo, yHi))
	mid := karatsubaMul(xSum, ySum, threshold)

	// mid currently holds (x_lo+x_hi)*(y_lo+y_hi); subtract z0 and z2
	// to get z1. z0 and z2 never exceed mid in value, so any of their
	// limbs past len(mid) are zero and subWords can ignore them.
	z1 := subWords(mid, z0)
	z1 = subWords(z1, z2)

	// Oversized by a small constant margin: the precise bound on
	// carry propagation through two addShifted calls is fiddly to
	// track exactly when len(x) != len(y), and trimWords strips the
	// extra zero limbs this margin can leave behind.
	result := make([]Word, len(x)+len(y)+2)
	copy(result, z0)
	addShifted(result, trimWords(z1), m)
	addShifted(result, trimWords(z2), 2*m)
	return result
}

// splitAt splits limb vector v at limb index m into (lo, hi) such that
// v == hi*B^m + lo.
func splitAt(v []Word, m int) (lo, hi []Word) {
	if m >= len(v) {
		return v, nil
	}
	return v[:m], v[m:]
}
