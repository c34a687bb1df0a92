package libm

import "github.com/ajroetker/go-libm/ieee"

// Fmaf returns x*y + z, computed as if with unbounded intermediate precision
// and rounded once to float32.
//
// Algorithm: x and y are split into 12-bit halves (ieee.Split32) so that
// every partial product is exact in float32, then
//
//	((hx*hy + z) + (hx*ly + lx*hy)) + lx*ly
//
// accumulates the terms from most to least significant. The sum itself is
// rounded more than once, so the result may differ from a true fused
// multiply-add by a few ULP when the terms cancel.
//
// Operands the split cannot carry exactly (zero, subnormal, Inf or NaN
// factors, a non-finite addend, factors at or above ieee.SplitLimit32 or a
// product near the ends of the exponent range) are evaluated through the
// float64 product, which is exact for float32 factors. Special values
// therefore follow IEEE 754 exactly:
//   - Fmaf(±Inf, ±0, z) = NaN
//   - Fmaf(±0, ±Inf, z) = NaN
//   - Fmaf(x, y, z) = NaN if x*y is an infinity of the opposite sign of z
//   - Fmaf(x, y, ±Inf) = ±Inf for finite x, y
//   - Fmaf(x, y, z) = NaN if any argument is NaN
//   - Fmaf(±0, y, ±0) follows the IEEE 754 signed-zero rules for x*y + z
func Fmaf(x, y, z float32) float32 {
	if !fmafSplittable(x, y) || ieee.Exponent32(ieee.Bits32(z)) == ieee.ExpMask32 {
		return fmafWide(x, y, z)
	}

	hx, lx := ieee.Split32(x)
	hy, ly := ieee.Split32(y)

	// Each product is exact; the conversions keep the compiler from fusing
	// them into the additions.
	hh := float32(hx * hy)
	cross := float32(hx*ly) + float32(lx*hy)
	ll := float32(lx * ly)
	return ((hh + z) + cross) + ll
}

// fmafSplittable reports whether x and y are normal, below the split limit,
// and multiply to a product exponent inside [fmafMinProdExp, fmafMaxProdExp].
func fmafSplittable(x, y float32) bool {
	ex := ieee.Exponent32(ieee.Bits32(x))
	ey := ieee.Exponent32(ieee.Bits32(y))
	if ex == 0 || ey == 0 || ex == ieee.ExpMask32 || ey == ieee.ExpMask32 {
		return false
	}
	ux, uy := int(ex)-ieee.Bias32, int(ey)-ieee.Bias32
	if ux > fmafMaxExp || uy > fmafMaxExp {
		return false
	}
	e := ux + uy
	return e >= fmafMinProdExp && e <= fmafMaxProdExp
}

// fmafWide evaluates x*y + z with the product formed in float64, where the
// 48-bit product of two float32 significands is exact.
func fmafWide(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	return float32(p + float64(z))
}
