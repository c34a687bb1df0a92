// Package sweep measures libm functions against the math package over
// sampled or enumerated inputs and reports their ULP error.
package sweep

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-libm/ieee"
)

// Run evaluates one job on pool. Inputs are generated per batch from
// job.Seed plus the batch index, so a report depends only on the job and
// not on the number of workers.
//
// Cancelling ctx stops the sweep at the next batch boundary; the partial
// report is returned along with ctx.Err().
func Run(ctx context.Context, pool *Pool, job Job) (*Report, error) {
	if err := job.Normalize(); err != nil {
		return nil, err
	}
	f, err := Lookup(job.Func)
	if err != nil {
		return nil, err
	}

	log := logrus.WithFields(logrus.Fields{"job": job.Name, "func": job.Func})
	log.WithField("count", job.Count()).Debug("sweep started")
	begin := time.Now()

	report := newReport(&job)
	var mu sync.Mutex
	merge := func(partial *Report) {
		mu.Lock()
		report.merge(partial)
		mu.Unlock()
	}

	count := job.Count()
	if job.Exhaustive {
		// One block of bit patterns per grab, merged as soon as it is done.
		blocks := (count + DefaultBatchSize - 1) / DefaultBatchSize
		pool.ParallelForAtomic(blocks, func(b int) {
			if ctx.Err() != nil {
				return
			}
			partial := newReport(&job)
			start := b * DefaultBatchSize
			runBatch(f, &job, start, min(start+DefaultBatchSize, count), partial)
			merge(partial)
		})
	} else {
		pool.ParallelForAtomicBatched(count, DefaultBatchSize, func(start, end int) {
			// A single-worker pool hands over the whole range at once.
			partial := newReport(&job)
			for b := start; b < end; b += DefaultBatchSize {
				if ctx.Err() != nil {
					break
				}
				runBatch(f, &job, b, min(b+DefaultBatchSize, end), partial)
			}
			merge(partial)
		})
	}
	if err := ctx.Err(); err != nil {
		log.WithError(err).Warn("sweep cancelled")
		return report, err
	}

	log.WithFields(logrus.Fields{
		"total":    report.Total,
		"failures": report.Failures,
		"maxULP":   report.MaxULP,
		"elapsed":  time.Since(begin),
	}).Info("sweep finished")
	return report, nil
}

func runBatch(f *Func, job *Job, start, end int, r *Report) {
	args := make([]float64, f.Args)
	if job.Exhaustive {
		for i := start; i < end; i++ {
			bits := job.FromBits + uint32(i)*job.Stride
			args[0] = float64(ieee.From32(bits))
			r.record(args, f.Dist(f.Eval(args), f.Ref(args)))
		}
		return
	}

	rng := rand.New(rand.NewSource(job.Seed + int64(start/DefaultBatchSize)))
	low, width := job.Range[0], job.Range[1]-job.Range[0]
	for i := start; i < end; i++ {
		for k := range args {
			if k == f.IntArg {
				args[k] = float64(rng.Int63n(int64(job.MaxExponent) + 1))
				continue
			}
			args[k] = f.Narrow(low + rng.Float64()*width)
		}
		r.record(args, f.Dist(f.Eval(args), f.Ref(args)))
	}
}

// RunAll runs jobs concurrently on a shared pool and returns their reports
// in job order. The first error cancels the remaining jobs.
func RunAll(ctx context.Context, pool *Pool, jobs []Job) ([]*Report, error) {
	reports := make([]*Report, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			r, err := Run(ctx, pool, job)
			reports[i] = r
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}
