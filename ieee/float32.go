package ieee

import "math"

// Binary32 layout: Sign (1 bit) | Exponent (8 bits) | Mantissa (23 bits)
//
//	S | EEEEEEEE | MMMMMMMMMMMMMMMMMMMMMMM
const (
	SignMask32     uint32 = 0x80000000
	AbsMask32      uint32 = 0x7fffffff
	ExpMask32      uint32 = 0xff
	MantissaMask32 uint32 = 0x007fffff
	MantissaBits32        = 23
	Bias32                = 127

	// QuietBit32 distinguishes quiet NaNs (set) from signaling NaNs (clear).
	QuietBit32 uint32 = 0x00400000

	// One32 is the bit pattern of 1.0.
	One32 uint32 = 0x3f800000

	Inf32    uint32 = 0x7f800000
	NegInf32 uint32 = 0xff800000

	// DefaultNaN32 is the NaN produced by invalid operations such as 0/0 on
	// amd64 and the one musl reports for domain errors.
	DefaultNaN32 uint32 = 0xffc00000
)

// Bits32 returns the IEEE 754 binary representation of x.
func Bits32(x float32) uint32 { return math.Float32bits(x) }

// From32 returns the float32 whose IEEE 754 binary representation is u.
// No bits are altered, signaling NaNs included.
func From32(u uint32) float32 { return math.Float32frombits(u) }

// Sign32 returns the sign bit of u (0 or 1).
func Sign32(u uint32) uint32 { return u >> 31 }

// Exponent32 returns the biased exponent field of u.
func Exponent32(u uint32) uint32 { return u >> MantissaBits32 & ExpMask32 }

// Mantissa32 returns the stored mantissa field of u, without the implicit bit.
func Mantissa32(u uint32) uint32 { return u & MantissaMask32 }

// Unbiased32 returns the exponent field of u minus the bias. Zero and
// subnormals report -127, Inf and NaN report 128.
func Unbiased32(u uint32) int { return int(Exponent32(u)) - Bias32 }

// Make32 assembles a float32 from its three fields. Out-of-range field bits
// are masked off.
func Make32(sign, exp, mant uint32) float32 {
	return From32(sign<<31 | (exp&ExpMask32)<<MantissaBits32 | mant&MantissaMask32)
}

// Signbit32 reports whether the sign bit of x is set, including for -0 and
// negative NaNs.
func Signbit32(x float32) bool { return Bits32(x)&SignMask32 != 0 }

// IsNaN32 reports whether x is a NaN of either kind.
func IsNaN32(x float32) bool { return Bits32(x)&AbsMask32 > Inf32 }

// IsInf32 reports whether x is an infinity of the given sign. sign > 0 tests
// for +Inf, sign < 0 for -Inf and sign == 0 for either.
func IsInf32(x float32, sign int) bool {
	u := Bits32(x)
	switch {
	case sign > 0:
		return u == Inf32
	case sign < 0:
		return u == NegInf32
	}
	return u&AbsMask32 == Inf32
}

// IsZero32 reports whether x is +0 or -0.
func IsZero32(x float32) bool { return Bits32(x)&AbsMask32 == 0 }

// IsSubnormal32 reports whether x is a non-zero value with a zero exponent field.
func IsSubnormal32(x float32) bool {
	u := Bits32(x)
	return Exponent32(u) == 0 && Mantissa32(u) != 0
}

// IsSignaling32 reports whether x is a signaling NaN.
func IsSignaling32(x float32) bool { return IsNaN32(x) && Bits32(x)&QuietBit32 == 0 }

// Classify32 returns the IEEE 754 class of x.
func Classify32(x float32) Class {
	u := Bits32(x)
	switch Exponent32(u) {
	case 0:
		if Mantissa32(u) == 0 {
			return Zero
		}
		return Subnormal
	case ExpMask32:
		if Mantissa32(u) == 0 {
			return Infinite
		}
		return NaN
	}
	return Normal
}
