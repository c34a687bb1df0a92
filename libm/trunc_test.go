package libm

import (
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-libm/ieee"
)

func TestTrunc(t *testing.T) {
	negZero := stdmath.Copysign(0, -1)
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"trunc(-2.7) = -2", -2.7, -2},
		{"trunc(2.7) = 2", 2.7, 2},
		{"trunc(0) = 0", 0, 0},
		{"trunc(-0) = -0", negZero, negZero},
		{"trunc(0.5) = +0", 0.5, 0},
		{"trunc(-0.5) = -0", -0.5, negZero},
		{"trunc(-1) = -1", -1, -1},
		{"trunc(1.9999999999999998) = 1", 1.9999999999999998, 1},
		{"trunc(4503599627370495.5)", 4503599627370495.5, 4503599627370495},
		{"trunc(2^52) unchanged", 1 << 52, 1 << 52},
		{"trunc(1e300) unchanged", 1e300, 1e300},
		{"trunc(min subnormal) = +0", stdmath.SmallestNonzeroFloat64, 0},
		{"trunc(-min subnormal) = -0", -stdmath.SmallestNonzeroFloat64, negZero},
		{"trunc(+Inf)", stdmath.Inf(1), stdmath.Inf(1)},
		{"trunc(-Inf)", stdmath.Inf(-1), stdmath.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trunc(tt.x)
			if ieee.Bits64(got) != ieee.Bits64(tt.want) {
				t.Errorf("Trunc(%v) = %v (%#016x), want %v (%#016x)",
					tt.x, got, ieee.Bits64(got), tt.want, ieee.Bits64(tt.want))
			}
		})
	}
}

func TestTruncNaNPayload(t *testing.T) {
	for _, u := range []uint64{0x7ff8000000000001, 0xfff8000000000000, 0x7ff0000000000123} {
		if got := ieee.Bits64(Trunc(ieee.From64(u))); got != u {
			t.Errorf("Trunc(%#016x) = %#016x, want the input unchanged", u, got)
		}
	}
}

func TestTruncMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 1_000_000; i++ {
		var x float64
		if i%2 == 0 {
			x = ieee.From64(r.Uint64())
		} else {
			// Values with a fractional part are what exercise the masks.
			x = r.NormFloat64() * stdmath.Pow(2, float64(r.Intn(64)-8))
		}
		got := Trunc(x)
		if ieee.IsNaN64(x) {
			// math.Trunc may quiet a signaling NaN; payloads are covered above.
			if !ieee.IsNaN64(got) {
				t.Fatalf("Trunc(%#016x) = %v, want NaN", ieee.Bits64(x), got)
			}
			continue
		}
		want := stdmath.Trunc(x)
		if ieee.Bits64(got) != ieee.Bits64(want) {
			t.Fatalf("Trunc(%v) = %v, math.Trunc = %v", x, got, want)
		}
		if ieee.Bits64(Trunc(got)) != ieee.Bits64(got) {
			t.Fatalf("Trunc not idempotent at %v", x)
		}
		if Fabs(got) > Fabs(x) {
			t.Fatalf("|Trunc(%v)| = %v exceeds |x|", x, Fabs(got))
		}
		if ieee.Signbit64(got) != ieee.Signbit64(x) {
			t.Fatalf("Trunc(%v) = %v changed sign", x, got)
		}
	}
}

func TestTruncf(t *testing.T) {
	negZero := float32(stdmath.Copysign(0, -1))
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{"truncf(-2.7) = -2", -2.7, -2},
		{"truncf(3.5) = 3", 3.5, 3},
		{"truncf(-0.25) = -0", -0.25, negZero},
		{"truncf(8388607.5) = 8388607", 8388607.5, 8388607},
		{"truncf(2^23) unchanged", 1 << 23, 1 << 23},
		{"truncf(max) unchanged", stdmath.MaxFloat32, stdmath.MaxFloat32},
		{"truncf(+Inf)", float32(stdmath.Inf(1)), float32(stdmath.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncf(tt.x)
			if ieee.Bits32(got) != ieee.Bits32(tt.want) {
				t.Errorf("Truncf(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestTruncfMatchesStdlib(t *testing.T) {
	// Every 97th bit pattern covers each exponent with varied mantissas.
	for u := uint64(0); u <= stdmath.MaxUint32; u += 97 {
		x := ieee.From32(uint32(u))
		got := Truncf(x)
		if ieee.IsNaN32(x) {
			if ieee.Bits32(got) != uint32(u) {
				t.Fatalf("Truncf(%#08x) = %#08x, want the NaN unchanged", u, ieee.Bits32(got))
			}
			continue
		}
		want := float32(stdmath.Trunc(float64(x)))
		if ieee.Bits32(got) != ieee.Bits32(want) {
			t.Fatalf("Truncf(%v) = %v, want %v", x, got, want)
		}
		if got != Truncf(got) {
			t.Fatalf("Truncf not idempotent at %v", x)
		}
	}
}
