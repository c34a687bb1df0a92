package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-libm/sweep"
)

type sweepOptions struct {
	config  string
	funcs   []string
	samples int
	seed    int64
	workers int
	fail    bool
}

func (o *sweepOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.config, "config", "c", "", "YAML job file")
	fs.StringSliceVarP(&o.funcs, "func", "f", nil, "functions to sweep when no job file is given (default all)")
	fs.IntVarP(&o.samples, "samples", "n", sweep.DefaultSamples, "samples per function (not with --config)")
	fs.Int64Var(&o.seed, "seed", 1, "random seed (not with --config)")
	fs.IntVarP(&o.workers, "workers", "w", 0, "worker goroutines (default $"+sweep.WorkersEnv+" or GOMAXPROCS)")
	fs.BoolVar(&o.fail, "fail", false, "exit non-zero when a job exceeds its ULP bound")
}

func newSweepCmd() *cobra.Command {
	var o sweepOptions
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Measure ULP error against the math package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd)
		},
	}
	o.addFlags(cmd.Flags())
	// Job files carry their own functions, sample counts and seeds.
	for _, f := range []string{"func", "samples", "seed"} {
		cmd.MarkFlagsMutuallyExclusive("config", f)
	}
	return cmd
}

func (o *sweepOptions) jobs() (jobs []sweep.Job, workers int, err error) {
	if o.config != "" {
		cfg, err := sweep.LoadConfig(o.config)
		if err != nil {
			return nil, 0, err
		}
		return cfg.Jobs, cfg.Workers, nil
	}

	funcs := o.funcs
	if len(funcs) == 0 {
		funcs = sweep.Names()
	}
	if unknown := lo.Without(funcs, sweep.Names()...); len(unknown) > 0 {
		return nil, 0, fmt.Errorf("%w: %v", sweep.ErrUnknownFunc, unknown)
	}
	jobs = lo.Map(lo.Uniq(funcs), func(name string, _ int) sweep.Job {
		return sweep.Job{Func: name, Samples: o.samples, Seed: o.seed}
	})
	return jobs, 0, nil
}

func (o *sweepOptions) run(cmd *cobra.Command) error {
	jobs, workers, err := o.jobs()
	if err != nil {
		return err
	}
	// Flag beats environment beats job file.
	if workers, err = sweep.WorkersFromEnv(workers); err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		workers = o.workers
	}

	pool := sweep.NewPool(workers)
	defer pool.Close()
	log.WithFields(log.Fields{"jobs": len(jobs), "workers": pool.NumWorkers()}).Debug("starting sweep")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	reports, err := sweep.RunAll(ctx, pool, jobs)
	for _, r := range reports {
		if r != nil {
			fmt.Fprint(cmd.OutOrStdout(), r)
		}
	}
	if err != nil {
		return err
	}

	failed := lo.Filter(reports, func(r *sweep.Report, _ int) bool { return !r.Passed() })
	if len(failed) > 0 {
		names := lo.Map(failed, func(r *sweep.Report, _ int) string { return r.Job })
		log.WithField("jobs", names).Warn("ULP bound exceeded")
		if o.fail {
			return fmt.Errorf("%d of %d jobs exceeded their ULP bound", len(failed), len(reports))
		}
	}
	return nil
}
