package sweep

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"sigs.k8s.io/yaml"
)

// Defaults applied to jobs that leave the field unset.
const (
	DefaultSamples     = 100_000
	DefaultMaxExponent = 64
	DefaultBatchSize   = 4096
)

// WorkersEnv names the environment variable that overrides Config.Workers.
const WorkersEnv = "LIBM_SWEEP_WORKERS"

// Config is a set of sweep jobs, usually loaded from YAML:
//
//	workers: 8
//	jobs:
//	  - func: fmaf
//	    samples: 1000000
//	    seed: 1
//	  - func: acoshf
//	    range: [1, 1.125]
//	    ulp: 2
//	  - func: truncf
//	    exhaustive: true
//	    stride: 17
type Config struct {
	Workers int   `json:"workers,omitempty"`
	Jobs    []Job `json:"jobs"`
}

// Job is one sweep of a function over sampled or enumerated inputs.
type Job struct {
	// Name labels the job in reports; it defaults to Func.
	Name string `json:"name,omitempty"`
	Func string `json:"func"`

	Samples int   `json:"samples,omitempty"`
	Seed    int64 `json:"seed,omitempty"`

	// Range is [min, max] for the floating-point arguments. Empty means the
	// function's default domain.
	Range []float64 `json:"range,omitempty"`

	// MaxExponent bounds powi's integer argument. It must stay below
	// math.MaxInt64 so that the inclusive range [0, MaxExponent] can be drawn.
	MaxExponent uint `json:"maxExponent,omitempty"`

	// ULP overrides the function's default error bound.
	ULP *uint64 `json:"ulp,omitempty"`

	// Exhaustive enumerates float32 bit patterns FromBits..ToBits (inclusive)
	// in steps of Stride instead of sampling. Single-argument float32
	// functions only. An unset ToBits means 0xffffffff.
	Exhaustive bool    `json:"exhaustive,omitempty"`
	FromBits   uint32  `json:"fromBits,omitempty"`
	ToBits     *uint32 `json:"toBits,omitempty"`
	Stride     uint32  `json:"stride,omitempty"`
}

// LoadConfig reads and validates a YAML (or JSON) job file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a YAML (or JSON) job file.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing sweep config: %w", err)
	}
	if len(cfg.Jobs) == 0 {
		return nil, errors.New("sweep config has no jobs")
	}
	for i := range cfg.Jobs {
		if err := cfg.Jobs[i].Normalize(); err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return &cfg, nil
}

// Normalize validates j and fills in defaults from its function.
func (j *Job) Normalize() error {
	f, err := Lookup(j.Func)
	if err != nil {
		return err
	}
	if j.Name == "" {
		j.Name = j.Func
	}
	if j.ULP == nil {
		bound := f.ULP
		j.ULP = &bound
	}

	if j.Exhaustive {
		if f.Args != 1 || f.Bits != 32 {
			return fmt.Errorf("%s: exhaustive sweeps need a single float32 argument", j.Func)
		}
		if j.ToBits == nil {
			last := uint32(math.MaxUint32)
			j.ToBits = &last
		}
		if *j.ToBits < j.FromBits {
			return fmt.Errorf("%s: toBits %#x below fromBits %#x", j.Func, *j.ToBits, j.FromBits)
		}
		if j.Stride == 0 {
			j.Stride = 1
		}
		return nil
	}

	switch {
	case j.Samples < 0:
		return fmt.Errorf("%s: samples must not be negative, got %d", j.Func, j.Samples)
	case j.Samples == 0:
		j.Samples = DefaultSamples
	}
	switch len(j.Range) {
	case 0:
		j.Range = []float64{f.Min, f.Max}
	case 2:
		if !(j.Range[0] <= j.Range[1]) {
			return fmt.Errorf("%s: range min %v above max %v", j.Func, j.Range[0], j.Range[1])
		}
	default:
		return fmt.Errorf("%s: range needs exactly 2 values, got %d", j.Func, len(j.Range))
	}
	switch {
	case j.MaxExponent == 0:
		j.MaxExponent = DefaultMaxExponent
	case uint64(j.MaxExponent) >= math.MaxInt64:
		return fmt.Errorf("%s: maxExponent %d out of range, must be below %d", j.Func, j.MaxExponent, int64(math.MaxInt64))
	}
	return nil
}

// Count returns the number of inputs the job evaluates.
func (j *Job) Count() int {
	if j.Exhaustive {
		return int((uint64(*j.ToBits)-uint64(j.FromBits))/uint64(j.Stride)) + 1
	}
	return j.Samples
}

// WorkersFromEnv returns the worker count set through WorkersEnv, or def
// when the variable is unset.
func WorkersFromEnv(def int) (int, error) {
	val := os.Getenv(WorkersEnv)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s=%q: want a non-negative integer", WorkersEnv, val)
	}
	return n, nil
}
