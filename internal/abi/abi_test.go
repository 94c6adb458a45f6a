package abi

import (
	"testing"

	"github.com/oisee/bigint/internal/bigint/bigerr"
)

func TestRecordAndLastError(t *testing.T) {
	RecordError(bigerr.ErrDivisionByZero)
	if got := LastError(); got != bigerr.KindDivisionByZero {
		t.Errorf("LastError() = %v, want KindDivisionByZero", got)
	}

	RecordError(nil)
	if got := LastError(); got != bigerr.KindNone {
		t.Errorf("LastError() after success = %v, want KindNone", got)
	}
}
