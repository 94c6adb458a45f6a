package bigint

import "testing"

// TestAliasing verifies every producing operation is correct when dst
// is the same Bigint as one of its operands (SPEC_FULL.md §9).
func TestAliasing(t *testing.T) {
	a := mustHex(t, "ff")
	b := mustHex(t, "1")

	t.Run("add dst aliases a", func(t *testing.T) {
		z := mustHex(t, "ff")
		Add(z, b, z)
		if got := GetHex(z, false); got != "100" {
			t.Errorf("got %s, want 100", got)
		}
	})

	t.Run("sub dst aliases a", func(t *testing.T) {
		z := mustHex(t, "100")
		one := mustHex(t, "1")
		if err := Sub(z, one, z); err != nil {
			t.Fatal(err)
		}
		if got := GetHex(z, false); got != "ff" {
			t.Errorf("got %s, want ff", got)
		}
	})

	t.Run("mul classic dst aliases a (self-multiplication)", func(t *testing.T) {
		z := mustHex(t, "ff")
		MulClassic(z, z, z)
		if got := GetHex(z, false); got != "fe01" {
			t.Errorf("got %s, want fe01", got)
		}
	})

	t.Run("mul karatsuba dst aliases a (self-multiplication)", func(t *testing.T) {
		z := mustHex(t, "ff")
		MulKaratsuba(z, z, z)
		if got := GetHex(z, false); got != "fe01" {
			t.Errorf("got %s, want fe01", got)
		}
	})

	t.Run("xor dst aliases both operands", func(t *testing.T) {
		z := mustHex(t, "deadbeef")
		Xor(z, z, z)
		if !z.IsZero() {
			t.Errorf("got %s, want 0", GetHex(z, false))
		}
	})

	t.Run("not dst aliases a", func(t *testing.T) {
		z := mustHex(t, "1")
		Not(z, z)
		if got := GetHex(z, true); got != "fffffffffffffffe" {
			t.Errorf("got %s, want fffffffffffffffe", got)
		}
	})

	t.Run("shiftleft dst aliases a", func(t *testing.T) {
		z := mustHex(t, "1")
		ShiftLeft(z, 64, z)
		if got := GetHex(z, false); got != "10000000000000000" {
			t.Errorf("got %s, want 10000000000000000", got)
		}
	})

	t.Run("div dst q aliases a", func(t *testing.T) {
		a := mustHex(t, "abcdef")
		b := mustHex(t, "1234")
		r := New(0)
		if err := Div(a, b, a, r); err != nil {
			t.Fatal(err)
		}
		if got := GetHex(a, false); got != "970" {
			t.Errorf("q = %s, want 970", got)
		}
		if got := GetHex(r, false); got != "32f" {
			t.Errorf("r = %s, want 32f", got)
		}
	})

	_ = a
}
