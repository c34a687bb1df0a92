package libm

import "github.com/ajroetker/go-libm/ieee"

// Acoshf returns the inverse hyperbolic cosine of x.
//
// Formula: acosh(x) = ln(x + sqrt(x² - 1))
//
// The magnitude of x, read from its bit pattern, selects one of three forms:
//
//	|x| < 2:         log1p(t + sqrt(t² + 2t)) with t = x - 1
//	2 <= |x| < 2^12: log(2x - 1/(x + sqrt(x² - 1)))
//	|x| >= 2^12:     log(x) + ln 2
//
// The first form avoids the cancellation in x² - 1 near 1 and has up to
// 2 ULP error in [1, 1.125]. The last keeps x² from overflowing.
//
// Special cases:
//   - Acoshf(1) = 0
//   - Acoshf(+Inf) = +Inf
//   - Acoshf(x) = NaN if x < 1, including -Inf
//   - Acoshf(NaN) = NaN
func Acoshf(x float32) float32 {
	a := ieee.Bits32(x) & ieee.AbsMask32

	if a < acoshfNear1 {
		// NaN for x < 1: the square root or log1p argument goes negative.
		t := x - 1
		return Log1pf(t + Sqrtf(float32(t*t)+2*t))
	}
	if ieee.Signbit32(x) {
		// x <= -2. Rounding in the forms below could turn this into -Inf.
		return invalid32(x)
	}
	if a < acoshfMid {
		return Logf(2*x - 1/(x+Sqrtf(float32(x*x)-1)))
	}
	return Logf(x) + ln2f
}

// Acosh returns the inverse hyperbolic cosine of x. See Acoshf; the
// thresholds are |x| < 2 and |x| < 2^26.
func Acosh(x float64) float64 {
	u := ieee.Bits64(x)
	e := ieee.Exponent64(u)

	if e < acoshNear1 {
		t := x - 1
		return Log1p(t + Sqrt(float64(t*t)+2*t))
	}
	if ieee.Signbit64(x) {
		return invalid64(x)
	}
	if e < acoshMid {
		return Log(2*x - 1/(x+Sqrt(float64(x*x)-1)))
	}
	return Log(x) + ln2
}
