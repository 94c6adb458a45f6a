// Package abi holds the pure-Go bookkeeping shared by the C ABI adapter
// in cmd/bigintshared: the out-of-band last-error channel required by
// SPEC_FULL.md §7. The cgo-facing struct marshalling itself lives in
// cmd/bigintshared, since cgo types can only appear in a file that
// imports "C".
package abi

import (
	"sync/atomic"

	"github.com/oisee/bigint/internal/bigint/bigerr"
)

// lastError is the most recently observed error Kind across all ABI
// calls. A literal per-OS-thread slot isn't a natural fit for
// cgo-exported Go functions (goroutines aren't OS threads and Go
// exposes no public thread-id); this repository uses a single
// process-wide slot instead, documented as a deliberate simplification
// in DESIGN.md. The status code every ABI call can also return remains
// the primary, race-free error channel.
var lastError atomic.Int32

// RecordError stores err's ABI-stable Kind as the most recently
// observed error and returns it.
func RecordError(err error) bigerr.Kind {
	k := bigerr.KindOf(err)
	lastError.Store(int32(k))
	return k
}

// LastError returns the most recently recorded error Kind, or KindNone
// if the last recorded operation succeeded (or none has run yet).
func LastError() bigerr.Kind {
	return bigerr.Kind(lastError.Load())
}
