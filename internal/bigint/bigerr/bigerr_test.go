package bigerr

import "testing"

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{nil, KindNone},
		{ErrInvalidInput, KindInvalidInput},
		{ErrDivisionByZero, KindDivisionByZero},
		{ErrUnderflow, KindUnderflow},
		{ErrAllocationFailure, KindAllocationFailure},
	}
	for _, c := range cases {
		if got := KindOf(c.err); got != c.want {
			t.Errorf("KindOf(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
