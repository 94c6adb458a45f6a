package bigint

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/oisee/bigint/internal/bigint/bigerr"
)

// toBigBig and fromBigBig bridge internal/bigint.Bigint and math/big.Int,
// used only in tests as an independent oracle — internal/bigint itself
// never imports math/big.
func toBigBig(t *testing.T, z *Bigint) *big.Int {
	t.Helper()
	n := new(big.Int)
	hex := GetHex(z, false)
	if _, ok := n.SetString(hex, 16); !ok {
		t.Fatalf("math/big could not parse %q", hex)
	}
	return n
}

func fromBigBig(t *testing.T, n *big.Int) *Bigint {
	t.Helper()
	z := New(0)
	hex := "0"
	if n.Sign() != 0 {
		hex = n.Text(16)
	}
	if err := SetHex(hex, z); err != nil {
		t.Fatal(err)
	}
	return z
}

func randomBig(t *testing.T, bitLen int) *big.Int {
	t.Helper()
	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), uint(bitLen)))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestAddScenario(t *testing.T) {
	a, b := mustHex(t, "ff"), mustHex(t, "1")
	dst := New(0)
	Add(a, b, dst)
	if got := GetHex(dst, false); got != "100" {
		t.Errorf("add(ff,1) = %s, want 100", got)
	}
}

func TestSubScenario(t *testing.T) {
	a, b := mustHex(t, "100"), mustHex(t, "1")
	dst := New(0)
	if err := Sub(a, b, dst); err != nil {
		t.Fatal(err)
	}
	if got := GetHex(dst, false); got != "ff" {
		t.Errorf("sub(100,1) = %s, want ff", got)
	}
}

func TestSubUnderflow(t *testing.T) {
	a, b := mustHex(t, "1"), mustHex(t, "2")
	dst := New(0)
	err := Sub(a, b, dst)
	if !errors.Is(err, bigerr.ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
}

func TestAddCommutativeAndAssociativeFuzz(t *testing.T) {
	const trials = 50
	const bitLen = 4096
	for i := 0; i < trials; i++ {
		a := fromBigBig(t, randomBig(t, bitLen))
		b := fromBigBig(t, randomBig(t, bitLen))
		c := fromBigBig(t, randomBig(t, bitLen))

		ab, ba := New(0), New(0)
		Add(a, b, ab)
		Add(b, a, ba)
		if GetHex(ab, false) != GetHex(ba, false) {
			t.Fatalf("a+b != b+a for a=%s b=%s", GetHex(a, false), GetHex(b, false))
		}

		left, right := New(0), New(0)
		Add(ab, c, left)
		bc := New(0)
		Add(b, c, bc)
		Add(a, bc, right)
		if GetHex(left, false) != GetHex(right, false) {
			t.Fatalf("(a+b)+c != a+(b+c) for a=%s b=%s c=%s", GetHex(a, false), GetHex(b, false), GetHex(c, false))
		}
	}
}

func TestAddIdentity(t *testing.T) {
	a := mustHex(t, "deadbeef")
	zero := New(0)
	dst := New(0)
	Add(a, zero, dst)
	if got, want := GetHex(dst, false), GetHex(a, false); got != want {
		t.Errorf("a+0 = %s, want %s", got, want)
	}
}

func TestSubAddRoundTripFuzz(t *testing.T) {
	const trials = 50
	const bitLen = 4096
	for i := 0; i < trials; i++ {
		hi := randomBig(t, bitLen)
		lo := randomBig(t, bitLen/2)
		hi.Add(hi, lo) // ensure hi >= lo
		a, b := fromBigBig(t, hi), fromBigBig(t, lo)

		diff := New(0)
		if err := Sub(a, b, diff); err != nil {
			t.Fatal(err)
		}
		back := New(0)
		Add(diff, b, back)
		if got, want := GetHex(back, false), GetHex(a, false); got != want {
			t.Fatalf("(a-b)+b != a: got %s want %s", got, want)
		}
	}
}

func TestAddAgainstOracleFuzz(t *testing.T) {
	const trials = 50
	const bitLen = 4096
	for i := 0; i < trials; i++ {
		abig := randomBig(t, bitLen)
		bbig := randomBig(t, bitLen)
		want := new(big.Int).Add(abig, bbig)

		dst := New(0)
		Add(fromBigBig(t, abig), fromBigBig(t, bbig), dst)
		if got := toBigBig(t, dst); got.Cmp(want) != 0 {
			t.Fatalf("add mismatch: a=%s b=%s got=%s want=%s", abig.Text(16), bbig.Text(16), got.Text(16), want.Text(16))
		}
	}
}
