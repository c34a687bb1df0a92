package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-libm/sweep"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval FUNC ARG...",
		Short: "Evaluate one function and compare it with the math package",
		Long: `Evaluate one function and compare it with the math package.

Arguments are decimal or hex floats (0x1p-3), or raw bit patterns written
as bits:0x3f800000 (float32 functions) or bits:0x3ff0000000000000.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := sweep.Lookup(args[0])
			if err != nil {
				return err
			}
			vals, err := parseArgs(f, args[1:])
			if err != nil {
				return err
			}

			got, want := f.Eval(vals), f.Ref(vals)
			out := cmd.OutOrStdout()
			call := fmt.Sprintf("%s(%s)", f.Name, strings.Join(lo.Map(vals, func(v float64, _ int) string {
				return formatFloat(v, f.Bits)
			}), ", "))
			width := len(call)
			fmt.Fprintf(out, "%-*s = %s\n", width, call, formatWithBits(got, f.Bits))
			fmt.Fprintf(out, "%-*s = %s\n", width, "math", formatWithBits(want, f.Bits))
			fmt.Fprintf(out, "%-*s = %d\n", width, "ulp", f.Dist(got, want))
			return nil
		},
	}
	// Negative arguments are values, not flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func parseArgs(f *sweep.Func, args []string) ([]float64, error) {
	if len(args) != f.Args {
		return nil, fmt.Errorf("%s takes %d arguments, got %d", f.Name, f.Args, len(args))
	}
	vals := make([]float64, len(args))
	for i, s := range args {
		v, err := parseFloat(s, f.Bits)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		if i == f.IntArg && (v < 0 || v != math.Trunc(v) || v > math.MaxInt64) {
			return nil, fmt.Errorf("argument %d: %s needs a non-negative integer, got %s", i+1, f.Name, s)
		}
		vals[i] = f.Narrow(v)
	}
	return vals, nil
}

func parseFloat(s string, bits int) (float64, error) {
	if hex, ok := strings.CutPrefix(s, "bits:"); ok {
		u, err := strconv.ParseUint(hex, 0, bits)
		if err != nil {
			return 0, err
		}
		if bits == 32 {
			return float64(math.Float32frombits(uint32(u))), nil
		}
		return math.Float64frombits(u), nil
	}
	return strconv.ParseFloat(s, bits)
}

func formatFloat(v float64, bits int) string {
	return strconv.FormatFloat(v, 'g', -1, bits)
}

func formatWithBits(v float64, bits int) string {
	if bits == 32 {
		return fmt.Sprintf("%s (0x%08x)", formatFloat(v, 32), math.Float32bits(float32(v)))
	}
	return fmt.Sprintf("%s (0x%016x)", formatFloat(v, 64), math.Float64bits(v))
}
