// Command bigintfuzz differentially tests the bigint engine against
// math/big as an independent oracle, and cross-checks the two
// multiplication algorithms against each other. It's the Go-native
// equivalent of the original C repo's external test.py harness,
// dispatched across a worker pool the way z80opt's superoptimizer
// search spreads work across goroutines (pkg/search/worker.go).
package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/oisee/bigint/internal/bigint"
	"github.com/oisee/bigint/internal/config"
)

// mismatch describes one observed divergence between the engine and
// its oracle (or between the engine's two multiplication algorithms).
type mismatch struct {
	op   string
	a, b string
	want string
	got  string
}

func main() {
	var (
		bits       int
		trials     int
		numWorkers int
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "bigintfuzz",
		Short: "Differentially fuzz the bigint engine against math/big",
		RunE: func(cmd *cobra.Command, args []string) error {
			tuning := config.FromEnvironment(config.DefaultTuning())
			if numWorkers <= 0 {
				numWorkers = runtime.NumCPU()
			}

			fmt.Printf("bigint fuzz: %d trials/op at %d bits, %d workers\n", trials, bits, numWorkers)

			mismatches := runFuzz(bits, trials, numWorkers, tuning)
			if verbose {
				fmt.Printf("Karatsuba threshold: %d limbs\n", tuning.KaratsubaThreshold)
			}
			if len(mismatches) == 0 {
				fmt.Println("all operations agree with the oracle")
				return nil
			}
			for _, m := range mismatches {
				fmt.Printf("MISMATCH %s(a=%s, b=%s): want %s got %s\n", m.op, m.a, m.b, m.want, m.got)
			}
			return fmt.Errorf("%d mismatches found", len(mismatches))
		},
	}

	rootCmd.Flags().IntVar(&bits, "bits", 4096, "operand bit width")
	rootCmd.Flags().IntVar(&trials, "trials", 50, "trials per operation")
	rootCmd.Flags().IntVar(&numWorkers, "workers", 0, "worker count (0 = NumCPU)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "print tuning diagnostics")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bigintfuzz:", err)
		os.Exit(1)
	}
}

// ops is the set of operations bigintfuzz checks against math/big,
// each paired with the oracle function it must agree with.
var ops = []struct {
	name  string
	check func(a, b *big.Int, tuning config.Tuning) *mismatch
}{
	{"add", func(a, b *big.Int, _ config.Tuning) *mismatch {
		return checkBinary("add", a, b, new(big.Int).Add(a, b), func(x, y, z *bigint.Bigint) { bigint.Add(x, y, z) })
	}},
	{"sub", func(a, b *big.Int, _ config.Tuning) *mismatch {
		// Sub requires a >= b; order the pair so the minuend dominates.
		hi, lo := a, b
		if hi.Cmp(lo) < 0 {
			hi, lo = lo, hi
		}
		return checkBinary("sub", hi, lo, new(big.Int).Sub(hi, lo), func(x, y, z *bigint.Bigint) { _ = bigint.Sub(x, y, z) })
	}},
	{"mul_classic", func(a, b *big.Int, _ config.Tuning) *mismatch {
		return checkBinary("mul_classic", a, b, new(big.Int).Mul(a, b), func(x, y, z *bigint.Bigint) { bigint.MulClassic(x, y, z) })
	}},
	{"mul_karatsuba", func(a, b *big.Int, tuning config.Tuning) *mismatch {
		return checkBinary("mul_karatsuba", a, b, new(big.Int).Mul(a, b), func(x, y, z *bigint.Bigint) {
			bigint.MulKaratsubaTuned(x, y, z, tuning.KaratsubaThreshold)
		})
	}},
	{"and", func(a, b *big.Int, _ config.Tuning) *mismatch {
		return checkBinary("and", a, b, new(big.Int).And(a, b), func(x, y, z *bigint.Bigint) { bigint.And(x, y, z) })
	}},
	{"or", func(a, b *big.Int, _ config.Tuning) *mismatch {
		return checkBinary("or", a, b, new(big.Int).Or(a, b), func(x, y, z *bigint.Bigint) { bigint.Or(x, y, z) })
	}},
	{"xor", func(a, b *big.Int, _ config.Tuning) *mismatch {
		return checkBinary("xor", a, b, new(big.Int).Xor(a, b), func(x, y, z *bigint.Bigint) { bigint.Xor(x, y, z) })
	}},
	{"div", func(a, b *big.Int, _ config.Tuning) *mismatch {
		if b.Sign() == 0 {
			return nil
		}
		wantQ, wantR := new(big.Int).QuoRem(a, b, new(big.Int))
		gotQ, gotR := bigint.New(0), bigint.New(0)
		ba, bb := toBigint(a), toBigint(b)
		if err := bigint.Div(ba, bb, gotQ, gotR); err != nil {
			return &mismatch{"div", hexOf(a), hexOf(b), wantQ.Text(16), "error: " + err.Error()}
		}
		if bigint.GetHex(gotQ, false) != hexOf(wantQ) || bigint.GetHex(gotR, false) != hexOf(wantR) {
			return &mismatch{"div", hexOf(a), hexOf(b),
				fmt.Sprintf("q=%s r=%s", hexOf(wantQ), hexOf(wantR)),
				fmt.Sprintf("q=%s r=%s", bigint.GetHex(gotQ, false), bigint.GetHex(gotR, false))}
		}
		return nil
	}},
	{"mul_agreement", func(a, b *big.Int, tuning config.Tuning) *mismatch {
		ba, bb := toBigint(a), toBigint(b)
		classic, karatsuba := bigint.New(0), bigint.New(0)
		bigint.MulClassic(ba, bb, classic)
		bigint.MulKaratsubaTuned(ba, bb, karatsuba, tuning.KaratsubaThreshold)
		if bigint.GetHex(classic, false) != bigint.GetHex(karatsuba, false) {
			return &mismatch{"mul_agreement", hexOf(a), hexOf(b), bigint.GetHex(classic, false), bigint.GetHex(karatsuba, false)}
		}
		return nil
	}},
}

func checkBinary(name string, a, b, want *big.Int, apply func(x, y, z *bigint.Bigint)) *mismatch {
	dst := bigint.New(0)
	apply(toBigint(a), toBigint(b), dst)
	got := bigint.GetHex(dst, false)
	if got != hexOf(want) {
		return &mismatch{name, hexOf(a), hexOf(b), hexOf(want), got}
	}
	return nil
}

// task is one unit of fuzz work: one operation checked against one
// random operand pair.
type task struct {
	opIndex int
	a, b    *big.Int
}

// runFuzz distributes trials*len(ops) tasks across numWorkers
// goroutines, mirroring pkg/search/worker.go's channel-and-waitgroup
// dispatch pattern, and collects every mismatch found.
func runFuzz(bitLen, trials, numWorkers int, tuning config.Tuning) []mismatch {
	tasks := make(chan task, trials*len(ops))
	for t := 0; t < trials; t++ {
		a, b := randomBigInt(bitLen), randomBigInt(bitLen)
		for i := range ops {
			tasks <- task{opIndex: i, a: a, b: b}
		}
	}
	close(tasks)

	var (
		mu        sync.Mutex
		found     []mismatch
		completed atomic.Int64
	)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				if m := ops[t.opIndex].check(t.a, t.b, tuning); m != nil {
					mu.Lock()
					found = append(found, *m)
					mu.Unlock()
				}
				completed.Add(1)
			}
		}()
	}
	wg.Wait()

	return found
}

func randomBigInt(bitLen int) *big.Int {
	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), uint(bitLen)))
	if err != nil {
		panic(err)
	}
	return n
}

func toBigint(n *big.Int) *bigint.Bigint {
	z := bigint.New(0)
	if err := bigint.SetHex(hexOf(n), z); err != nil {
		panic(err)
	}
	return z
}

func hexOf(n *big.Int) string {
	if n.Sign() == 0 {
		return "0"
	}
	return n.Text(16)
}
