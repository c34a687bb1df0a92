package libm

// Exp2f returns 2**x, the base-2 exponential of x.
//
// It forwards to Powf with base 2, which does its own range reduction, so
// overflow, underflow and NaN handling are those of Powf:
//   - Exp2f(+Inf) = +Inf
//   - Exp2f(-Inf) = +0
//   - Exp2f(NaN) = NaN
//   - Exp2f(x) = +Inf for x >= 128
func Exp2f(x float32) float32 {
	return Powf(2, x)
}

// Exp2 returns 2**x. See Exp2f.
func Exp2(x float64) float64 {
	return Pow(2, x)
}
