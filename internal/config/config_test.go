package config

import (
	"os"
	"testing"
)

func TestDefaultTuning(t *testing.T) {
	d := DefaultTuning()
	if d.KaratsubaThreshold != 32 {
		t.Errorf("default KaratsubaThreshold = %d, want 32", d.KaratsubaThreshold)
	}
	if d.Verbose {
		t.Errorf("default Verbose should be false")
	}
}

func TestFromEnvironmentOverrides(t *testing.T) {
	os.Setenv("BIGINT_KARATSUBA_THRESHOLD", "64")
	os.Setenv("BIGINT_VERBOSE", "true")
	defer os.Unsetenv("BIGINT_KARATSUBA_THRESHOLD")
	defer os.Unsetenv("BIGINT_VERBOSE")

	got := FromEnvironment(DefaultTuning())
	if got.KaratsubaThreshold != 64 {
		t.Errorf("KaratsubaThreshold = %d, want 64", got.KaratsubaThreshold)
	}
	if !got.Verbose {
		t.Errorf("Verbose = false, want true")
	}
}

func TestFromEnvironmentIgnoresInvalid(t *testing.T) {
	os.Setenv("BIGINT_KARATSUBA_THRESHOLD", "not-a-number")
	defer os.Unsetenv("BIGINT_KARATSUBA_THRESHOLD")

	got := FromEnvironment(DefaultTuning())
	if got.KaratsubaThreshold != DefaultTuning().KaratsubaThreshold {
		t.Errorf("invalid env var should leave default in place, got %d", got.KaratsubaThreshold)
	}
}
