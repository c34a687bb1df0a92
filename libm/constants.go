package libm

// =============================================================================
// Constants shared by the elementary functions
// =============================================================================

const (
	ln2f float32 = 0.693147180559945309417232121458176568
	ln2  float64 = 0.693147180559945309417232121458176568

	// 2^120, added to a value to raise the inexact flag on targets that
	// track it.
	x1p120f float32 = 0x1p120
	x1p120  float64 = 0x1p120
)

// Acosh branch thresholds, on the sign-cleared bit pattern.
const (
	acoshfNear1 uint32 = 0x3f800000 + 1<<23  // |x| < 2
	acoshfMid   uint32 = 0x3f800000 + 12<<23 // |x| < 0x1p12

	acoshNear1 uint64 = 0x3ff + 1  // exponent field of |x| < 2
	acoshMid   uint64 = 0x3ff + 26 // exponent field of |x| < 0x1p26
)

// Fmaf evaluates the split sum only when the product exponent lies in this
// range and each factor is below ieee.SplitLimit32; elsewhere partial
// products could overflow or lose bits to underflow.
const (
	fmafMinProdExp = -100
	fmafMaxProdExp = 100
	fmafMaxExp     = 114
)
