// Command libm evaluates the go-libm functions and sweeps them against the
// math package.
//
// Usage:
//
//	libm eval fmaf 0.1 0.2 0.3
//	libm sweep --func acoshf,exp2f --samples 1000000
//	libm sweep --config jobs.yaml --fail
//	libm info
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "libm",
		Short:        "Evaluate and validate software libm functions",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newEvalCmd(), newSweepCmd(), newInfoCmd())
	return root
}
