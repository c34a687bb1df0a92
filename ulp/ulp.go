// Package ulp measures the distance between floating-point values in units
// in the last place.
//
// Values are mapped onto a monotonic unsigned scale where adjacent
// representable values differ by one, so the distance between a result and
// its reference is the number of representable values separating them:
//
//	if ulp.Dist32(got, want) > 2 {
//	    // more than 2 ULP away
//	}
package ulp

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-libm/ieee"
)

// key32 maps x onto the monotonic scale. ±0 share a key.
func key32(x float32) uint32 {
	u := ieee.Bits32(x)
	if u&ieee.SignMask32 != 0 {
		return ieee.SignMask32 - u&ieee.AbsMask32
	}
	return ieee.SignMask32 + u
}

func key64(x float64) uint64 {
	u := ieee.Bits64(x)
	if u&ieee.SignMask64 != 0 {
		return ieee.SignMask64 - u&ieee.AbsMask64
	}
	return ieee.SignMask64 + u
}

// Dist32 returns the number of float32 values between a and b, so adjacent
// values are 1 apart and +0 and -0 are 0 apart. Two NaNs are 0 apart
// whatever their payloads; a NaN and a non-NaN are math.MaxUint32 apart.
func Dist32(a, b float32) uint32 {
	an, bn := ieee.IsNaN32(a), ieee.IsNaN32(b)
	if an || bn {
		if an && bn {
			return 0
		}
		return math.MaxUint32
	}
	ka, kb := key32(a), key32(b)
	if ka > kb {
		return ka - kb
	}
	return kb - ka
}

// Dist64 is Dist32 for float64.
func Dist64(a, b float64) uint64 {
	an, bn := ieee.IsNaN64(a), ieee.IsNaN64(b)
	if an || bn {
		if an && bn {
			return 0
		}
		return math.MaxUint64
	}
	ka, kb := key64(a), key64(b)
	if ka > kb {
		return ka - kb
	}
	return kb - ka
}

// Dist returns the ULP distance between a and b at the precision of T.
func Dist[T constraints.Float](a, b T) uint64 {
	if unsafe.Sizeof(a) == 4 {
		d := Dist32(float32(a), float32(b))
		if d == math.MaxUint32 {
			// Only a NaN against a number is this far apart.
			return math.MaxUint64
		}
		return uint64(d)
	}
	return Dist64(float64(a), float64(b))
}

// Within reports whether got is at most n ULP from want. NaN is within any
// bound of NaN.
func Within[T constraints.Float](got, want T, n uint64) bool {
	return Dist(got, want) <= n
}

// SameBits32 reports whether a and b have identical bit patterns, which
// tells -0 from +0 and compares NaN payloads.
func SameBits32(a, b float32) bool { return ieee.Bits32(a) == ieee.Bits32(b) }

// SameBits64 is SameBits32 for float64.
func SameBits64(a, b float64) bool { return ieee.Bits64(a) == ieee.Bits64(b) }
