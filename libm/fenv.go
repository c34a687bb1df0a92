package libm

// forceEval32 and forceEval64 consume a value so that the operation
// producing it is performed even though its result is discarded. Go exposes
// no floating-point status flags; the evaluation stands in for the C
// library's FORCE_EVAL and keeps the instruction sequence comparable.
//
//go:noinline
func forceEval32(float32) {}

//go:noinline
func forceEval64(float64) {}

// invalid32 returns the NaN produced by an invalid operation on x. A NaN x
// propagates with its payload.
func invalid32(x float32) float32 {
	return (x - x) / (x - x)
}

func invalid64(x float64) float64 {
	return (x - x) / (x - x)
}
