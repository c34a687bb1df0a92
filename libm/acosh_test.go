package libm

import (
	stdmath "math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-libm/ieee"
	"github.com/ajroetker/go-libm/ulp"
)

func TestAcoshf(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
		ulps uint32
	}{
		{"acosh(1) = 0", 1, 0, 0},
		{"acosh(2)", 2, 1.3169579, 2},
		{"acosh(1.0625)", 1.0625, float32(stdmath.Acosh(1.0625)), 2},
		{"acosh(1+2^-23)", 1 + 0x1p-23, float32(stdmath.Acosh(1 + 0x1p-23)), 2},
		{"acosh(3.5)", 3.5, float32(stdmath.Acosh(3.5)), 2},
		{"acosh(4095)", 4095, float32(stdmath.Acosh(4095)), 2},
		{"acosh(4096)", 4096, float32(stdmath.Acosh(4096)), 2},
		{"acosh(1e30)", 1e30, float32(stdmath.Acosh(1e30)), 2},
		{"acosh(max)", stdmath.MaxFloat32, float32(stdmath.Acosh(stdmath.MaxFloat32)), 2},
		{"acosh(+Inf)", float32(stdmath.Inf(1)), float32(stdmath.Inf(1)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Acoshf(tt.x)
			if d := ulp.Dist32(got, tt.want); d > tt.ulps {
				t.Errorf("Acoshf(%v) = %v, want %v (%d ULP)", tt.x, got, tt.want, d)
			}
		})
	}

	if got := Acoshf(1); ieee.Bits32(got) != 0 {
		t.Errorf("Acoshf(1) = %v (%#08x), want +0", got, ieee.Bits32(got))
	}
}

func TestAcoshfDomain(t *testing.T) {
	invalid := []float32{
		0, float32(stdmath.Copysign(0, -1)), 0.5, -0.5, -1, -1.5, -2, -3, -4095, -4096, -1e30,
		1 - 0x1p-24, float32(stdmath.Inf(-1)), float32(stdmath.NaN()),
		// From a CI failure report: acoshf(0.04181403) must be NaN.
		ieee.From32(1026245936),
	}
	for _, x := range invalid {
		if got := Acoshf(x); !ieee.IsNaN32(got) {
			t.Errorf("Acoshf(%v) = %v, want NaN", x, got)
		}
	}

	r := rand.New(rand.NewSource(17))
	for i := 0; i < 200_000; i++ {
		u := r.Uint32() | ieee.SignMask32
		if i%2 == 1 {
			u = r.Uint32() % ieee.One32
		}
		x := ieee.From32(u)
		if got := Acoshf(x); !ieee.IsNaN32(got) {
			t.Fatalf("Acoshf(%v) = %v, want NaN", x, got)
		}
	}
}

func TestAcoshfNaNInput(t *testing.T) {
	for _, u := range []uint32{0x7fc00123, 0xffc00456} {
		got := Acoshf(ieee.From32(u))
		if !ieee.IsNaN32(got) {
			t.Errorf("Acoshf(%#08x) = %v, want NaN", u, got)
		}
	}
}

func TestAcoshfMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	for i := 0; i < 300_000; i++ {
		var x float32
		switch i % 3 {
		case 0:
			x = float32(1 + 0.125*r.Float64())
		case 1:
			x = float32(1 + 4200*r.Float64())
		default:
			x = float32(stdmath.Exp2(127.9 * r.Float64()))
		}
		got := Acoshf(x)
		if got < 0 {
			t.Fatalf("Acoshf(%v) = %v, want >= 0", x, got)
		}
		want := float32(stdmath.Acosh(float64(x)))
		if d := ulp.Dist32(got, want); d > 3 {
			t.Fatalf("Acoshf(%v) = %v, want %v (%d ULP)", x, got, want, d)
		}
	}
}

func TestAcosh(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{1, 0},
		{2, 1.3169578969248166},
		{1 + 0x1p-52, stdmath.Acosh(1 + 0x1p-52)},
		{1e10, stdmath.Acosh(1e10)},
		{0x1p26, stdmath.Acosh(0x1p26)},
		{1e300, stdmath.Acosh(1e300)},
	}
	for _, tt := range tests {
		if got := Acosh(tt.x); !ulp.Within(got, tt.want, 2) {
			t.Errorf("Acosh(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	for _, x := range []float64{0.999, 0, -1, -2, -1e10, -1e300, stdmath.Inf(-1), stdmath.NaN()} {
		if got := Acosh(x); !ieee.IsNaN64(got) {
			t.Errorf("Acosh(%v) = %v, want NaN", x, got)
		}
	}
}

func TestAcoshMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(29))
	for i := 0; i < 100_000; i++ {
		x := stdmath.Exp2(1000 * r.Float64())
		if i%2 == 0 {
			x = 1 + 3*r.Float64()
		}
		if d := ulp.Dist64(Acosh(x), stdmath.Acosh(x)); d > 3 {
			t.Fatalf("Acosh(%v) = %v, math.Acosh = %v (%d ULP)", x, Acosh(x), stdmath.Acosh(x), d)
		}
	}
}
