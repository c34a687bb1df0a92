package libm

import "github.com/ajroetker/go-libm/ieee"

// Trunc returns the integer value of x, rounding toward zero.
//
// No integer conversion is involved, so values beyond the range of int64
// are returned unchanged. Fractional bits are cleared straight from the bit
// pattern.
//
// Special cases:
//   - Trunc(±0) = ±0
//   - Trunc(±Inf) = ±Inf
//   - Trunc(NaN) = NaN
//   - Trunc(x) = ±0 for 0 < |x| < 1, keeping the sign of x
func Trunc(x float64) float64 {
	u := ieee.Bits64(x)

	// e counts the bits of u, sign and exponent included, that lie above
	// the binary point.
	e := ieee.Unbiased64(u) + 12
	if e >= ieee.MantissaBits64+12 {
		// Integral already; also Inf and NaN.
		return x
	}
	if e < 12 {
		// |x| < 1: clear everything but the sign.
		e = 1
	}
	m := ^uint64(0) >> uint(e)
	if u&m == 0 {
		return x
	}
	forceEval64(x + x1p120)
	return ieee.From64(u &^ m)
}

// Truncf returns the integer value of x, rounding toward zero. See Trunc.
func Truncf(x float32) float32 {
	u := ieee.Bits32(x)

	e := ieee.Unbiased32(u) + 9
	if e >= ieee.MantissaBits32+9 {
		return x
	}
	if e < 9 {
		e = 1
	}
	m := ^uint32(0) >> uint(e)
	if u&m == 0 {
		return x
	}
	forceEval32(x + x1p120f)
	return ieee.From32(u &^ m)
}
