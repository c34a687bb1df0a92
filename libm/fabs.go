package libm

import "github.com/ajroetker/go-libm/ieee"

// Fabsf returns the absolute value of x.
//
// The sign bit is cleared and nothing else changes, so
//
//   - Fabsf(±0) = +0
//   - Fabsf(±Inf) = +Inf
//   - Fabsf(NaN) = NaN with the same payload and the sign bit cleared
func Fabsf(x float32) float32 {
	return ieee.From32(ieee.Bits32(x) & ieee.AbsMask32)
}

// Fabs returns the absolute value of x. See Fabsf.
func Fabs(x float64) float64 {
	return ieee.From64(ieee.Bits64(x) & ieee.AbsMask64)
}
