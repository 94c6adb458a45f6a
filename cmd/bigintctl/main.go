// Command bigintctl is a developer-facing CLI for exercising the bigint
// engine interactively, grounded on z80opt's cobra command-tree layout:
// one subcommand per operation, hex strings in, hex strings out.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oisee/bigint/internal/bigint"
	"github.com/oisee/bigint/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigintctl",
		Short: "Exercise the bigint engine from the command line",
	}

	var karatsubaThreshold int
	var padTop bool
	rootCmd.PersistentFlags().IntVar(&karatsubaThreshold, "karatsuba-threshold", config.DefaultTuning().KaratsubaThreshold,
		"limb count below which multiplication falls back to the classic algorithm")
	rootCmd.PersistentFlags().BoolVar(&padTop, "pad-top", false, "zero-pad the top limb of hex output")

	rootCmd.AddCommand(
		binaryCmd("add", "a + b", func(a, b, dst *bigint.Bigint) error {
			bigint.Add(a, b, dst)
			return nil
		}, &padTop),
		binaryCmd("sub", "a - b (requires a >= b)", func(a, b, dst *bigint.Bigint) error {
			return bigint.Sub(a, b, dst)
		}, &padTop),
		binaryCmd("and", "a & b", func(a, b, dst *bigint.Bigint) error {
			bigint.And(a, b, dst)
			return nil
		}, &padTop),
		binaryCmd("or", "a | b", func(a, b, dst *bigint.Bigint) error {
			bigint.Or(a, b, dst)
			return nil
		}, &padTop),
		binaryCmd("xor", "a ^ b", func(a, b, dst *bigint.Bigint) error {
			bigint.Xor(a, b, dst)
			return nil
		}, &padTop),
		unaryCmd("not", "~a (limb-rounded width)", func(a, dst *bigint.Bigint) error {
			bigint.Not(a, dst)
			return nil
		}, &padTop),
		shiftCmd("shl", "a << k", bigint.ShiftLeft, &padTop),
		shiftCmd("shr", "a >> k", bigint.ShiftRight, &padTop),
		mulCmd(&karatsubaThreshold, &padTop),
		divCmd(&padTop),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bigintctl:", err)
		os.Exit(1)
	}
}

func parseArg(s string) (*bigint.Bigint, error) {
	z := bigint.New(0)
	if err := bigint.SetHex(s, z); err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, err)
	}
	return z, nil
}

func binaryCmd(name, short string, op func(a, b, dst *bigint.Bigint) error, padTop *bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a-hex> <b-hex>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			dst := bigint.New(0)
			if err := op(a, b, dst); err != nil {
				return err
			}
			fmt.Println(bigint.GetHex(dst, *padTop))
			return nil
		},
	}
}

func unaryCmd(name, short string, op func(a, dst *bigint.Bigint) error, padTop *bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a-hex>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			dst := bigint.New(0)
			if err := op(a, dst); err != nil {
				return err
			}
			fmt.Println(bigint.GetHex(dst, *padTop))
			return nil
		},
	}
}

func shiftCmd(name, short string, op func(a *bigint.Bigint, k uint, dst *bigint.Bigint), padTop *bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a-hex> <k>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			var k uint64
			if _, err := fmt.Sscanf(args[1], "%d", &k); err != nil {
				return fmt.Errorf("parse shift count %q: %w", args[1], err)
			}
			dst := bigint.New(0)
			op(a, uint(k), dst)
			fmt.Println(bigint.GetHex(dst, *padTop))
			return nil
		},
	}
}

func mulCmd(threshold *int, padTop *bool) *cobra.Command {
	var algo string
	cmd := &cobra.Command{
		Use:   "mul <a-hex> <b-hex>",
		Short: "a * b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			dst := bigint.New(0)
			switch algo {
			case "classic":
				bigint.MulClassic(a, b, dst)
			case "karatsuba":
				bigint.MulKaratsubaTuned(a, b, dst, *threshold)
			default:
				return fmt.Errorf("unknown --algo %q: use classic or karatsuba", algo)
			}
			fmt.Println(bigint.GetHex(dst, *padTop))
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "karatsuba", "multiplication algorithm: classic or karatsuba")
	return cmd
}

func divCmd(padTop *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "div <a-hex> <b-hex>",
		Short: "q, r = a // b, a mod b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return err
			}
			b, err := parseArg(args[1])
			if err != nil {
				return err
			}
			q, r := bigint.New(0), bigint.New(0)
			if err := bigint.Div(a, b, q, r); err != nil {
				return err
			}
			fmt.Printf("q=%s r=%s\n", bigint.GetHex(q, *padTop), bigint.GetHex(r, *padTop))
			return nil
		},
	}
}
