package bigint

import "testing"

func mustHex(t *testing.T, s string) *Bigint {
	t.Helper()
	z := New(0)
	if err := SetHex(s, z); err != nil {
		t.Fatalf("SetHex(%q): %v", s, err)
	}
	return z
}

func TestCmp(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"ff", "100", -1},
		{"100", "ff", 1},
		{"ffffffffffffffff", "ffffffffffffffff", 0},
		{"10000000000000000", "ffffffffffffffff", 1},
	}
	for _, c := range cases {
		a, b := mustHex(t, c.a), mustHex(t, c.b)
		if got := Cmp(a, b); got != c.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCanonicalForm(t *testing.T) {
	z := New(4)
	if err := SetHex("ff00000000000000ff", z); err != nil {
		t.Fatal(err)
	}
	limbs := z.Limbs()
	if len(limbs) == 0 {
		t.Fatal("expected non-zero length")
	}
	if limbs[len(limbs)-1] == 0 {
		t.Errorf("top limb must be non-zero for canonical non-zero value, got %v", limbs)
	}

	zero := New(0)
	if zero.Len() != 0 {
		t.Errorf("fresh zero value should have Len() == 0, got %d", zero.Len())
	}
}

func TestReserveGrowsAndPreserves(t *testing.T) {
	z := New(0)
	if err := SetHex("abc", z); err != nil {
		t.Fatal(err)
	}
	before := GetHex(z, false)
	z.Reserve(64)
	if z.Cap() < 64 {
		t.Errorf("Reserve(64) left capacity %d", z.Cap())
	}
	if got := GetHex(z, false); got != before {
		t.Errorf("Reserve must preserve value: got %q want %q", got, before)
	}
}

func TestReserveAtLeastDoubles(t *testing.T) {
	z := New(8)
	z.Reserve(9)
	if z.Cap() < 16 {
		t.Errorf("Reserve should grow geometrically (at least doubling): cap=%d after growing from 8", z.Cap())
	}
}

func TestDestroyResetsToZero(t *testing.T) {
	z := mustHex(t, "ff")
	z.Destroy()
	if z.Len() != 0 || z.Cap() != 0 {
		t.Errorf("after Destroy: len=%d cap=%d, want both 0", z.Len(), z.Cap())
	}
}
