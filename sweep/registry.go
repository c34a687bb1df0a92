package sweep

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/ajroetker/go-libm/libm"
	"github.com/ajroetker/go-libm/ulp"
)

// ErrUnknownFunc is returned when a job names a function that is not in the
// registry.
var ErrUnknownFunc = errors.New("unknown function")

// Func describes one libm function for evaluation against its reference.
//
// Arguments and results travel as float64. For single-precision functions
// the arguments are float32 values widened exactly and results are compared
// after narrowing back; powi's second argument carries the integer exponent.
type Func struct {
	Name string

	// Args is the number of arguments, 1 to 3.
	Args int

	// Bits is the working precision, 32 or 64.
	Bits int

	// Eval calls the libm implementation, Ref the math package equivalent.
	Eval func(a []float64) float64
	Ref  func(a []float64) float64

	// ULP is the default error bound and [Min, Max] the default sampling
	// domain for the floating-point arguments.
	ULP      uint64
	Min, Max float64

	// IntArg is the index of an integer argument, or -1.
	IntArg int
}

// Dist returns the ULP distance between got and want at f's precision.
func (f *Func) Dist(got, want float64) uint64 {
	if f.Bits == 32 {
		return ulp.Dist(float32(got), float32(want))
	}
	return ulp.Dist(got, want)
}

// Narrow rounds a floating-point argument to f's precision.
func (f *Func) Narrow(x float64) float64 {
	if f.Bits == 32 {
		return float64(float32(x))
	}
	return x
}

func f32(x float64) float32 { return float32(x) }

var functions = map[string]*Func{
	"fabsf": {
		Args: 1, Bits: 32, ULP: 0, Min: -1e30, Max: 1e30, IntArg: -1,
		Eval: func(a []float64) float64 { return float64(libm.Fabsf(f32(a[0]))) },
		Ref:  func(a []float64) float64 { return math.Abs(a[0]) },
	},
	"fabs": {
		Args: 1, Bits: 64, ULP: 0, Min: -1e300, Max: 1e300, IntArg: -1,
		Eval: func(a []float64) float64 { return libm.Fabs(a[0]) },
		Ref:  func(a []float64) float64 { return math.Abs(a[0]) },
	},
	"trunc": {
		Args: 1, Bits: 64, ULP: 0, Min: -1e6, Max: 1e6, IntArg: -1,
		Eval: func(a []float64) float64 { return libm.Trunc(a[0]) },
		Ref:  func(a []float64) float64 { return math.Trunc(a[0]) },
	},
	"truncf": {
		Args: 1, Bits: 32, ULP: 0, Min: -1e6, Max: 1e6, IntArg: -1,
		Eval: func(a []float64) float64 { return float64(libm.Truncf(f32(a[0]))) },
		Ref:  func(a []float64) float64 { return math.Trunc(a[0]) },
	},
	"fmaf": {
		// The reference rounds twice, through float64 and then float32.
		Args: 3, Bits: 32, ULP: 3, Min: -1, Max: 1, IntArg: -1,
		Eval: func(a []float64) float64 { return float64(libm.Fmaf(f32(a[0]), f32(a[1]), f32(a[2]))) },
		Ref:  func(a []float64) float64 { return math.FMA(a[0], a[1], a[2]) },
	},
	"powi": {
		Args: 2, Bits: 64, ULP: 64, Min: 0.5, Max: 2, IntArg: 1,
		Eval: func(a []float64) float64 { return libm.Powi(a[0], uint(a[1])) },
		Ref:  func(a []float64) float64 { return math.Pow(a[0], a[1]) },
	},
	"exp2f": {
		Args: 1, Bits: 32, ULP: 1, Min: -150, Max: 128, IntArg: -1,
		Eval: func(a []float64) float64 { return float64(libm.Exp2f(f32(a[0]))) },
		Ref:  func(a []float64) float64 { return math.Exp2(a[0]) },
	},
	"exp2": {
		Args: 1, Bits: 64, ULP: 3, Min: -1075, Max: 1024, IntArg: -1,
		Eval: func(a []float64) float64 { return libm.Exp2(a[0]) },
		Ref:  func(a []float64) float64 { return math.Exp2(a[0]) },
	},
	"acoshf": {
		Args: 1, Bits: 32, ULP: 3, Min: 1, Max: 8192, IntArg: -1,
		Eval: func(a []float64) float64 { return float64(libm.Acoshf(f32(a[0]))) },
		Ref:  func(a []float64) float64 { return math.Acosh(a[0]) },
	},
	"acosh": {
		Args: 1, Bits: 64, ULP: 3, Min: 1, Max: 1 << 30, IntArg: -1,
		Eval: func(a []float64) float64 { return libm.Acosh(a[0]) },
		Ref:  func(a []float64) float64 { return math.Acosh(a[0]) },
	},
}

func init() {
	for name, f := range functions {
		f.Name = name
	}
}

// Lookup returns the registered function with the given name.
func Lookup(name string) (*Func, error) {
	f, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFunc, name)
	}
	return f, nil
}

// Names returns the registered function names in sorted order.
func Names() []string {
	names := lo.Keys(functions)
	sort.Strings(names)
	return names
}
