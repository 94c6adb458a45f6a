// Package config holds tunables for the bigint engine and its CLI
// front ends. The core engine never reads these from the environment
// itself; the CLI tools pass the Karatsuba threshold to internal/bigint
// explicitly (MulKaratsubaTuned) so that a caller embedding the engine
// as a library never inherits CLI-only configuration.
package config

import (
	"os"
	"strconv"
)

// Tuning carries the tunables the CLI tools resolve. Of these, only
// KaratsubaThreshold reaches internal/bigint, as a plain argument.
type Tuning struct {
	// KaratsubaThreshold is the operand length, in limbs, below which
	// multiplication falls back to the classic schoolbook algorithm.
	KaratsubaThreshold int
	// InitialCapacityHint is a capacity hint for new destination
	// Bigints. The CLI tools construct destinations with New(0) and do
	// not read it.
	InitialCapacityHint int
	// Verbose holds the BIGINT_VERBOSE setting. No code in this module
	// reads it; engine logging happens only through a Logger passed to
	// bigint.DivTraced.
	Verbose bool
}

// DefaultTuning matches the constants documented in SPEC_FULL.md §4.10.
func DefaultTuning() Tuning {
	return Tuning{
		KaratsubaThreshold: 32,
		InitialCapacityHint: 0,
		Verbose: false,
	}
}

// FromEnvironment overlays BIGINT_KARATSUBA_THRESHOLD and BIGINT_VERBOSE
// onto t, for the CLI tools only; internal/bigint never calls this.
func FromEnvironment(t Tuning) Tuning {
	if s := os.Getenv("BIGINT_KARATSUBA_THRESHOLD"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			t.KaratsubaThreshold = n
		}
	}
	if s := os.Getenv("BIGINT_VERBOSE"); s != "" {
		if v, err := strconv.ParseBool(s); err == nil {
			t.Verbose = v
		}
	}
	return t
}
