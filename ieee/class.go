// Package ieee provides bit-level access to IEEE 754 binary32 and binary64
// values.
//
// Every predicate in this package inspects the raw bit pattern instead of
// using floating-point comparisons, so negative zero, NaN payloads and the
// quiet/signaling distinction survive classification unchanged:
//
//	u := ieee.Bits32(x)
//	if ieee.Exponent32(u) == ieee.ExpMask32 {
//	    // x is Inf or NaN
//	}
package ieee

// Class is the IEEE 754 category of a floating-point value.
type Class int

const (
	// Zero is +0 or -0.
	Zero Class = iota

	// Subnormal has the minimum exponent field and a non-zero mantissa.
	Subnormal

	// Normal is any finite non-zero value with an implicit leading one.
	Normal

	// Infinite is +Inf or -Inf.
	Infinite

	// NaN is any quiet or signaling not-a-number.
	NaN
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case Subnormal:
		return "subnormal"
	case Normal:
		return "normal"
	case Infinite:
		return "infinite"
	case NaN:
		return "nan"
	default:
		return "unknown"
	}
}
