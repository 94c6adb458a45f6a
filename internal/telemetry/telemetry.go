// Package telemetry is a small level-gated logger for the bigint engine.
// It is not consulted by ABI entry points, which must stay silent and
// allocation-only. Within the engine, only bigint.DivTraced logs (its
// Knuth D repair steps), and only to a Logger its caller passes in; the
// CLI tools do not create one.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"
)

// Logger writes timestamped, tag-prefixed lines to an underlying writer
// when enabled. A nil or disabled Logger is a safe no-op.
type Logger struct {
	out     io.Writer
	enabled atomic.Bool
}

// New returns a Logger writing to os.Stderr, enabled according to verbose.
func New(verbose bool) *Logger {
	l := &Logger{out: os.Stderr}
	l.enabled.Store(verbose)
	return l
}

// SetEnabled toggles logging at runtime.
func (l *Logger) SetEnabled(v bool) {
	if l == nil {
		return
	}
	l.enabled.Store(v)
}

// Logf writes a tagged diagnostic line if the logger is enabled.
func (l *Logger) Logf(tag, format string, args ...any) {
	if l == nil || !l.enabled.Load() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.out, "[%s] [%s] %s\n", time.Now().Format("15:04:05.000"), tag, msg)
}

// Growth logs a destination buffer reallocation.
func (l *Logger) Growth(op string, oldCap, newCap int) {
	l.Logf("growth", "%s: capacity %d -> %d limbs", op, oldCap, newCap)
}

// KaratsubaDepth logs entry into a Karatsuba recursion level.
func (l *Logger) KaratsubaDepth(depth, limbs int) {
	l.Logf("karatsuba", "depth %d: %d limbs", depth, limbs)
}

// DivRepair logs a Knuth Algorithm D quotient-digit repair step.
func (l *Logger) DivRepair(j int) {
	l.Logf("div", "repair step at limb %d", j)
}
