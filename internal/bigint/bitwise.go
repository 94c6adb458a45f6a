package bigint

// And computes dst = a & b, treating the shorter operand as
// zero-extended. Destination length is max(len_a, len_b) before
// trimming (AND can only shrink, never grow, the shorter operand's
// length, but the shared trim pass is applied uniformly here too).
func And(a, b *Bigint, dst *Bigint) {
	dst.setFrom(trimWords(bitwise2(a, b, func(x, y Word) Word { return x & y })))
}

// Or computes dst = a | b, zero-extending the shorter operand.
func Or(a, b *Bigint, dst *Bigint) {
	dst.setFrom(trimWords(bitwise2(a, b, func(x, y Word) Word { return x | y })))
}

// Xor computes dst = a ^ b, zero-extending the shorter operand.
func Xor(a, b *Bigint, dst *Bigint) {
	dst.setFrom(trimWords(bitwise2(a, b, func(x, y Word) Word { return x ^ y })))
}

// bitwise2 applies op limb-wise across a and b, zero-extending whichever
// operand is shorter, and returns an untrimmed result of length
// max(len_a, len_b).
func bitwise2(a, b *Bigint, op func(x, y Word) Word) []Word {
	al, bl := a.Limbs(), b.Limbs()
	n := len(al)
	if len(bl) > n {
		n = len(bl)
	}
	w := make([]Word, n)
	for i := 0; i < n; i++ {
		var x, y Word
		if i < len(al) {
			x = al[i]
		}
		if i < len(bl) {
			y = bl[i]
		}
		w[i] = op(x, y)
	}
	return w
}

// Not computes dst = ~a, complementing every bit of every limb in
// [0, len_a). The result's width is the limb-rounded width of a;
// callers that need a different bit-width must pre-extend a themselves.
func Not(a *Bigint, dst *Bigint) {
	al := a.Limbs()
	w := make([]Word, len(al))
	for i, limb := range al {
		w[i] = ^limb
	}
	dst.setFrom(trimWords(w))
}

// ShiftLeft computes dst = a << k for an unsigned bit count k. A shift
// of zero yields an exact copy.
func ShiftLeft(a *Bigint, k uint, dst *Bigint) {
	al := a.Limbs()
	if len(al) == 0 {
		dst.setFrom(nil)
		return
	}
	limbShift := int(k / WordBits)
	bitShift := uint(k % WordBits)

	n := len(al) + limbShift
	if bitShift != 0 {
		n++
	}
	w := make([]Word, n)

	if bitShift == 0 {
		copy(w[limbShift:], al)
	} else {
		var carry Word
		for i, limb := range al {
			w[i+limbShift] = (limb << bitShift) | carry
			carry = limb >> (WordBits - bitShift)
		}
		w[len(al)+limbShift] = carry
	}
	dst.setFrom(trimWords(w))
}

// ShiftRight computes dst = a >> k. Bits shifted off the low end are
// discarded; shifting by k >= bitlen(a) yields zero.
func ShiftRight(a *Bigint, k uint, dst *Bigint) {
	al := a.Limbs()
	limbShift := int(k / WordBits)
	bitShift := uint(k % WordBits)

	if limbShift >= len(al) {
		dst.setFrom(nil)
		return
	}

	n := len(al) - limbShift
	w := make([]Word, n)

	if bitShift == 0 {
		copy(w, al[limbShift:])
	} else {
		for i := 0; i < n; i++ {
			lo := al[i+limbShift] >> bitShift
			var hi Word
			if i+limbShift+1 < len(al) {
				hi = al[i+limbShift+1] << (WordBits - bitShift)
			}
			w[i] = lo | hi
		}
	}
	dst.setFrom(trimWords(w))
}
