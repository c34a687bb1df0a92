package sweep

import (
	"fmt"
	"strconv"
	"strings"
)

// HistBuckets is the number of ULP histogram buckets: distances 0 through
// HistBuckets-2 each get their own bucket, larger ones share the last.
const HistBuckets = 5

// Report accumulates the outcome of one job.
type Report struct {
	Job   string
	Func  string
	Bound uint64

	Total    int
	Exact    int // bit-identical to the reference
	Inexact  int // off by 1..Bound ULP
	Failures int // off by more than Bound ULP

	// MaxULP is the largest distance seen and Worst the arguments that
	// produced it.
	MaxULP uint64
	Worst  []float64

	Hist [HistBuckets]int
}

func newReport(job *Job) *Report {
	return &Report{Job: job.Name, Func: job.Func, Bound: *job.ULP}
}

func (r *Report) record(args []float64, dist uint64) {
	r.Total++
	switch {
	case dist == 0:
		r.Exact++
	case dist <= r.Bound:
		r.Inexact++
	default:
		r.Failures++
	}
	r.Hist[min(dist, HistBuckets-1)]++
	if dist > r.MaxULP || r.Worst == nil {
		r.MaxULP = dist
		r.Worst = append(r.Worst[:0], args...)
	}
}

// merge adds the counters of o into r.
func (r *Report) merge(o *Report) {
	r.Total += o.Total
	r.Exact += o.Exact
	r.Inexact += o.Inexact
	r.Failures += o.Failures
	for i := range r.Hist {
		r.Hist[i] += o.Hist[i]
	}
	if o.Worst != nil && (r.Worst == nil || o.MaxULP > r.MaxULP) {
		r.MaxULP = o.MaxULP
		r.Worst = append([]float64(nil), o.Worst...)
	}
}

// Passed reports whether every evaluation stayed within the bound.
func (r *Report) Passed() bool {
	return r.Failures == 0
}

// Percent returns n as a percentage of the total.
func (r *Report) Percent(n int) float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(r.Total)
}

func (r *Report) String() string {
	var b strings.Builder
	status := "PASS"
	if !r.Passed() {
		status = "FAIL"
	}
	fmt.Fprintf(&b, "%s %s (%s): %d evaluations, bound %d ulp\n", status, r.Job, r.Func, r.Total, r.Bound)
	fmt.Fprintf(&b, "  exact    %10d (%6.2f%%)\n", r.Exact, r.Percent(r.Exact))
	fmt.Fprintf(&b, "  inexact  %10d (%6.2f%%)\n", r.Inexact, r.Percent(r.Inexact))
	fmt.Fprintf(&b, "  failures %10d (%6.2f%%)\n", r.Failures, r.Percent(r.Failures))
	if r.Worst != nil {
		fmt.Fprintf(&b, "  max ulp %d at %s(%s)\n", r.MaxULP, r.Func, formatArgs(r.Worst))
	}
	b.WriteString("  histogram")
	for i, n := range r.Hist {
		label := strconv.Itoa(i)
		if i == HistBuckets-1 {
			label = ">" + strconv.Itoa(i-1)
		}
		fmt.Fprintf(&b, " %s:%d", label, n)
	}
	b.WriteByte('\n')
	return b.String()
}

func formatArgs(args []float64) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
