// Package bigint implements a fixed-radix arbitrary-precision unsigned
// integer engine: a little-endian limb-array data model plus the
// multi-precision arithmetic, bitwise, shift, division, and hexadecimal
// I/O primitives built on top of it.
//
// Every producing operation takes ownership-free references to its
// operands and a mutable reference to a destination Bigint, which may
// alias one of the operands. Operations stage their result into a local
// buffer and copy it into the destination's own (possibly grown) storage
// at the end, so aliasing is always safe.
package bigint

// Word is one limb: a fixed-width unsigned component of the
// representation. W = WordBits bits.
type Word = uint64

// WordBits is the limb width W, in bits.
const WordBits = 64

// Bigint is a growable vector of Word limbs in little-endian limb order:
// the value is Σ limbs[i]·2^(WordBits·i) for i in [0, len(limbs)).
//
// len(limbs) is the Bigint's "len" in the spec's (limbs, capacity, len)
// triple; cap(limbs) is its "capacity". Bigint's memory layout is not
// the ABI's: the cgo-facing struct in cmd/bigintshared declares the
// three fields (limbs, capacity, len) explicitly for C callers and
// copies limbs to and from a Bigint on each call.
type Bigint struct {
	limbs []Word
}

// New constructs a Bigint with value zero and at least the given limb
// capacity. Capacity zero is permitted and elides allocation.
func New(capacity int) *Bigint {
	if capacity <= 0 {
		return &Bigint{}
	}
	return &Bigint{limbs: make([]Word, 0, capacity)}
}

// FromLimbs wraps an already-canonical little-endian limb slice as a
// Bigint without copying. It exists for the ABI adapter in
// cmd/bigintshared, which reads operand limbs
// directly out of caller-owned memory; core algorithms never mutate
// their operands, so aliasing that memory here is safe as long as the
// caller doesn't mutate it concurrently.
func FromLimbs(limbs []Word) *Bigint {
	return &Bigint{limbs: trimWords(limbs)}
}

// Len reports the number of meaningful limbs (zero for the value zero).
func (z *Bigint) Len() int {
	if z == nil {
		return 0
	}
	return len(z.limbs)
}

// Cap reports the limb capacity of the destination's current backing
// storage.
func (z *Bigint) Cap() int {
	if z == nil {
		return 0
	}
	return cap(z.limbs)
}

// IsZero reports whether z represents the value 0.
func (z *Bigint) IsZero() bool {
	return z.Len() == 0
}

// Limbs returns the meaningful limbs in little-endian order. The
// returned slice aliases z's storage and must not be retained across a
// call that may grow z.
func (z *Bigint) Limbs() []Word {
	if z == nil {
		return nil
	}
	return z.limbs
}

// Destroy releases z's limb storage and resets it to the zero value,
// mirroring the explicit destructor the ABI exposes as
// bigint_free_limbs. After Destroy, z is safe to reuse as a fresh
// zero-capacity Bigint.
func (z *Bigint) Destroy() {
	if z == nil {
		return
	}
	z.limbs = nil
}

// Reserve ensures z's backing storage can hold at least n limbs without
// reallocating, growing geometrically (at minimum doubling) to amortize
// repeated growth, and preserving the limbs already present. It never
// changes z's Len.
func (z *Bigint) Reserve(n int) {
	if cap(z.limbs) >= n {
		return
	}
	newCap := cap(z.limbs) * 2
	if newCap < n {
		newCap = n
	}
	if newCap < 4 {
		newCap = 4
	}
	grown := make([]Word, len(z.limbs), newCap)
	copy(grown, z.limbs)
	z.limbs = grown
}

// setFrom copies a freshly computed, already-trimmed result into z's own
// storage, reserving capacity first. w must not alias z's current
// backing array; every operation in this package computes into a local
// temporary precisely so that this call is always safe even when the
// public API's dst aliases one of its operands.
func (z *Bigint) setFrom(w []Word) {
	z.Reserve(len(w))
	z.limbs = z.limbs[:len(w)]
	copy(z.limbs, w)
}

// trimWords returns the canonical-length prefix of w: the longest prefix
// whose top limb, if any, is non-zero.
func trimWords(w []Word) []Word {
	n := len(w)
	for n > 0 && w[n-1] == 0 {
		n--
	}
	return w[:n]
}

// clone returns an independent copy of an operand's limbs, used where an
// algorithm needs to mutate a working copy of an input (e.g. division's
// normalization shift) without disturbing the caller's Bigint.
func clone(a *Bigint) []Word {
	w := make([]Word, a.Len())
	copy(w, a.Limbs())
	return w
}

// Cmp returns -1, 0, or +1 as a < b, a == b, or a > b, comparing
// canonical lengths first and then limbs from high to low — the total
// order required by Sub's precondition and by division.
func Cmp(a, b *Bigint) int {
	al, bl := a.Limbs(), b.Limbs()
	if len(al) != len(bl) {
		if len(al) < len(bl) {
			return -1
		}
		return 1
	}
	for i := len(al) - 1; i >= 0; i-- {
		if al[i] != bl[i] {
			if al[i] < bl[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
