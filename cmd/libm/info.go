package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-libm/internal/cpuinfo"
	"github.com/ajroetker/go-libm/sweep"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the host and the available functions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, cpuinfo.Collect())
			fmt.Fprintln(out, "functions:")
			for _, name := range sweep.Names() {
				f, _ := sweep.Lookup(name)
				fmt.Fprintf(out, "  %-7s float%d, %d arg(s), bound %d ulp, domain [%g, %g]\n",
					name, f.Bits, f.Args, f.ULP, f.Min, f.Max)
			}
		},
	}
}
