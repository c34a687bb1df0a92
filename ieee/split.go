package ieee

// Dekker splitting constants: 2^s + 1 where s = ceil(p/2) for precision p.
const (
	splitter32 float32 = 4097      // 2^12 + 1
	splitter64 float64 = 134217729 // 2^27 + 1

	// SplitLimit32 and SplitLimit64 bound |x| for Split32 and Split64; at or
	// above them the scaled intermediate overflows.
	SplitLimit32 float32 = 0x1p115
	SplitLimit64 float64 = 0x1p995
)

// Split32 decomposes x into hi + lo, exactly, where hi carries at most 12
// significant bits and lo at most 12 more. Products of two such halves are
// exact in float32, which is what lets a product be carried with twice the
// working precision.
//
// |x| must be below SplitLimit32. Inf and NaN produce NaN halves.
func Split32(x float32) (hi, lo float32) {
	// Explicit conversions keep the compiler from fusing the multiply into
	// the subtraction on targets with FMA instructions.
	t := float32(splitter32 * x)
	hi = t - (t - x)
	lo = x - hi
	return hi, lo
}

// Split64 is Split32 for float64: hi carries at most 26 significant bits.
//
// |x| must be below SplitLimit64.
func Split64(x float64) (hi, lo float64) {
	t := float64(splitter64 * x)
	hi = t - (t - x)
	lo = x - hi
	return hi, lo
}
