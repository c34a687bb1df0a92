package libm

import "math/bits"

// Powi returns x raised to the non-negative integer power n.
//
// Algorithm: exponentiation by repeated squaring. sq[k] holds x^(2^k) and
// is filled on demand, sq[k] = sq[k-1]*sq[k-1]; the result is the product of
// the entries for the set bits of n, taken from least to most significant.
//
// Special cases:
//   - Powi(x, 0) = 1 for any x, including ±0 and NaN
//   - Powi(x, 1) = x
//   - Powi(±0, n) = ±0 for odd n, +0 for even n > 0
//   - Powi(NaN, n) = NaN for n > 0
//
// Overflow and underflow saturate to ±Inf and ±0 as the products do.
func Powi(x float64, n uint) float64 {
	if n == 0 {
		return 1
	}

	var sq [bits.UintSize]float64
	sq[0] = x
	r := 1.0
	for k := 0; n != 0; k++ {
		if k > 0 {
			sq[k] = sq[k-1] * sq[k-1]
		}
		if n&1 != 0 {
			r *= sq[k]
		}
		n >>= 1
	}
	return r
}
