// Command bigintshared builds the C ABI surface described in
// SPEC_FULL.md §4.11 as a c-shared library:
//
//	go build -buildmode=c-shared -o bigint.so ./cmd/bigintshared
//
// The resulting bigint.so exports the bigint_* symbols and can be
// loaded by any C, Python (ctypes/cffi), or other FFI-capable caller —
// this is the dynamic library the original test harness binds to.
//
// This file is the only place in the repository that imports "C": the
// arithmetic engine in internal/bigint is plain, cgo-free Go, and this
// adapter's entire job is marshalling between its Go-managed memory and
// the malloc'd, pointer-stable memory a C caller expects to own.
package main

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	uint64_t *limbs;
	size_t capacity;
	size_t len;
} bigint_t;
*/
import "C"

import (
	"unsafe"

	"github.com/oisee/bigint/internal/abi"
	"github.com/oisee/bigint/internal/bigint"
)

func main() {}

// wordSize is sizeof(uint64_t) on the C side.
var wordSize = C.size_t(unsafe.Sizeof(C.uint64_t(0)))

// cLimbs returns a zero-copy Go view over a bigint_t's meaningful
// limbs. The returned slice aliases C-owned memory and must not be
// retained past the call, and must never be written through directly —
// callers read it into a Go-owned Bigint via bigint.FromLimbs before
// any computation touches it.
func cLimbs(b *C.bigint_t) []uint64 {
	if b == nil || b.limbs == nil || b.len == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(b.limbs)), int(b.len))
}

// operand wraps a bigint_t's limbs as a read-only internal/bigint
// operand.
func operand(b *C.bigint_t) *bigint.Bigint {
	return bigint.FromLimbs(cLimbs(b))
}

// writeBack copies src's computed limbs into dst's C-owned buffer,
// growing it with C.realloc (at minimum doubling, mirroring
// internal/bigint.Bigint.Reserve's amortized growth policy) when the
// existing capacity is too small. This is the one place a dst's
// pointer, as seen by the C caller, is allowed to move.
func writeBack(dst *C.bigint_t, src *bigint.Bigint) {
	limbs := src.Limbs()
	n := C.size_t(len(limbs))

	if n > dst.capacity {
		newCap := dst.capacity * 2
		if newCap < n {
			newCap = n
		}
		if newCap < 4 {
			newCap = 4
		}
		grown := C.realloc(unsafe.Pointer(dst.limbs), newCap*wordSize)
		dst.limbs = (*C.uint64_t)(grown)
		dst.capacity = newCap
	}

	dst.len = n
	if n == 0 {
		return
	}
	goView := unsafe.Slice((*uint64)(unsafe.Pointer(dst.limbs)), int(n))
	copy(goView, limbs)
}

//export bigint_new_capacity
func bigint_new_capacity(n C.size_t) *C.bigint_t {
	b := (*C.bigint_t)(C.malloc(C.size_t(unsafe.Sizeof(C.bigint_t{}))))
	b.limbs = nil
	b.capacity = 0
	b.len = 0
	if n > 0 {
		b.limbs = (*C.uint64_t)(C.malloc(n * wordSize))
		b.capacity = n
	}
	return b
}

//export bigint_free_limbs
func bigint_free_limbs(x *C.bigint_t) {
	if x == nil {
		return
	}
	if x.limbs != nil {
		C.free(unsafe.Pointer(x.limbs))
		x.limbs = nil
	}
	x.capacity = 0
	x.len = 0
}

//export bigint_free_string
func bigint_free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

//export bigint_set_hex
func bigint_set_hex(ascii *C.char, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	err := bigint.SetHex(C.GoString(ascii), z)
	writeBack(dst, z)
	return statusOf(err)
}

//export bigint_get_hex
func bigint_get_hex(src *C.bigint_t, padTop C.bool) *C.char {
	s := bigint.GetHex(operand(src), bool(padTop))
	abi.RecordError(nil)
	return C.CString(s)
}

//export bigint_bit_not
func bigint_bit_not(a, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	bigint.Not(operand(a), z)
	writeBack(dst, z)
	return statusOf(nil)
}

//export bigint_bit_and
func bigint_bit_and(a, b, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	bigint.And(operand(a), operand(b), z)
	writeBack(dst, z)
	return statusOf(nil)
}

//export bigint_bit_or
func bigint_bit_or(a, b, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	bigint.Or(operand(a), operand(b), z)
	writeBack(dst, z)
	return statusOf(nil)
}

//export bigint_bit_xor
func bigint_bit_xor(a, b, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	bigint.Xor(operand(a), operand(b), z)
	writeBack(dst, z)
	return statusOf(nil)
}

//export bigint_bit_shiftl
func bigint_bit_shiftl(a *C.bigint_t, k C.size_t, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	bigint.ShiftLeft(operand(a), uint(k), z)
	writeBack(dst, z)
	return statusOf(nil)
}

//export bigint_bit_shiftr
func bigint_bit_shiftr(a *C.bigint_t, k C.size_t, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	bigint.ShiftRight(operand(a), uint(k), z)
	writeBack(dst, z)
	return statusOf(nil)
}

//export bigint_add
func bigint_add(a, b, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	bigint.Add(operand(a), operand(b), z)
	writeBack(dst, z)
	return statusOf(nil)
}

//export bigint_sub
func bigint_sub(a, b, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	err := bigint.Sub(operand(a), operand(b), z)
	writeBack(dst, z)
	return statusOf(err)
}

//export bigint_mul_classic
func bigint_mul_classic(a, b, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	bigint.MulClassic(operand(a), operand(b), z)
	writeBack(dst, z)
	return statusOf(nil)
}

//export bigint_mul_karatsuba
func bigint_mul_karatsuba(a, b, dst *C.bigint_t) C.int {
	z := newDestination(dst)
	bigint.MulKaratsuba(operand(a), operand(b), z)
	writeBack(dst, z)
	return statusOf(nil)
}

//export bigint_div
func bigint_div(a, b, q, r *C.bigint_t) C.int {
	zq, zr := newDestination(q), newDestination(r)
	err := bigint.Div(operand(a), operand(b), zq, zr)
	if err == nil {
		writeBack(q, zq)
		writeBack(r, zr)
	}
	return statusOf(err)
}

//export bigint_last_error
func bigint_last_error() C.int {
	return C.int(abi.LastError())
}

// newDestination allocates a fresh Go-owned scratch Bigint for an
// operation to compute into. Operations always stage their result in
// Go-managed memory first (internal/bigint's own Reserve discipline
// handles growth there); writeBack is the only step that touches the
// C-owned destination buffer, which is what makes every operation here
// safe when dst aliases an operand.
func newDestination(dst *C.bigint_t) *bigint.Bigint {
	return bigint.New(0)
}

func statusOf(err error) C.int {
	return C.int(abi.RecordError(err))
}
