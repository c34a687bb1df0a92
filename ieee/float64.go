package ieee

import "math"

// Binary64 layout: Sign (1 bit) | Exponent (11 bits) | Mantissa (52 bits)
const (
	SignMask64     uint64 = 0x8000000000000000
	AbsMask64      uint64 = 0x7fffffffffffffff
	ExpMask64      uint64 = 0x7ff
	MantissaMask64 uint64 = 0x000fffffffffffff
	MantissaBits64        = 52
	Bias64                = 1023

	QuietBit64 uint64 = 0x0008000000000000

	One64 uint64 = 0x3ff0000000000000

	Inf64    uint64 = 0x7ff0000000000000
	NegInf64 uint64 = 0xfff0000000000000

	DefaultNaN64 uint64 = 0xfff8000000000000
)

// Bits64 returns the IEEE 754 binary representation of x.
func Bits64(x float64) uint64 { return math.Float64bits(x) }

// From64 returns the float64 whose IEEE 754 binary representation is u.
func From64(u uint64) float64 { return math.Float64frombits(u) }

// Sign64 returns the sign bit of u (0 or 1).
func Sign64(u uint64) uint64 { return u >> 63 }

// Exponent64 returns the biased exponent field of u.
func Exponent64(u uint64) uint64 { return u >> MantissaBits64 & ExpMask64 }

// Mantissa64 returns the stored mantissa field of u.
func Mantissa64(u uint64) uint64 { return u & MantissaMask64 }

// Unbiased64 returns the exponent field of u minus the bias.
func Unbiased64(u uint64) int { return int(Exponent64(u)) - Bias64 }

// Make64 assembles a float64 from its three fields.
func Make64(sign, exp, mant uint64) float64 {
	return From64(sign<<63 | (exp&ExpMask64)<<MantissaBits64 | mant&MantissaMask64)
}

// Signbit64 reports whether the sign bit of x is set.
func Signbit64(x float64) bool { return Bits64(x)&SignMask64 != 0 }

// IsNaN64 reports whether x is a NaN of either kind.
func IsNaN64(x float64) bool { return Bits64(x)&AbsMask64 > Inf64 }

// IsInf64 reports whether x is an infinity, according to sign (see IsInf32).
func IsInf64(x float64, sign int) bool {
	u := Bits64(x)
	switch {
	case sign > 0:
		return u == Inf64
	case sign < 0:
		return u == NegInf64
	}
	return u&AbsMask64 == Inf64
}

// IsZero64 reports whether x is +0 or -0.
func IsZero64(x float64) bool { return Bits64(x)&AbsMask64 == 0 }

// IsSubnormal64 reports whether x is a non-zero value with a zero exponent field.
func IsSubnormal64(x float64) bool {
	u := Bits64(x)
	return Exponent64(u) == 0 && Mantissa64(u) != 0
}

// IsSignaling64 reports whether x is a signaling NaN.
func IsSignaling64(x float64) bool { return IsNaN64(x) && Bits64(x)&QuietBit64 == 0 }

// Classify64 returns the IEEE 754 class of x.
func Classify64(x float64) Class {
	u := Bits64(x)
	switch Exponent64(u) {
	case 0:
		if Mantissa64(u) == 0 {
			return Zero
		}
		return Subnormal
	case ExpMask64:
		if Mantissa64(u) == 0 {
			return Infinite
		}
		return NaN
	}
	return Normal
}
