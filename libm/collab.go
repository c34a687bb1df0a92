package libm

import "math"

// The logarithm, square root and real power functions below are the
// collaborators the elementary functions are built from. They delegate to
// Go's math package, which is itself implemented in Go on every target, and
// narrow the result once. Square root is correctly rounded in float32
// because float64 carries more than twice its precision.

// Logf returns the natural logarithm of x.
func Logf(x float32) float32 { return float32(math.Log(float64(x))) }

// Log1pf returns the natural logarithm of 1 plus x, accurately for x near 0.
func Log1pf(x float32) float32 { return float32(math.Log1p(float64(x))) }

// Sqrtf returns the square root of x.
func Sqrtf(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Powf returns x**y with Go's math.Pow special cases.
func Powf(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }

// Log returns the natural logarithm of x.
func Log(x float64) float64 { return math.Log(x) }

// Log1p returns the natural logarithm of 1 plus x.
func Log1p(x float64) float64 { return math.Log1p(x) }

// Sqrt returns the square root of x.
func Sqrt(x float64) float64 { return math.Sqrt(x) }

// Pow returns x**y.
func Pow(x, y float64) float64 { return math.Pow(x, y) }
