package cpuinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestCollect(t *testing.T) {
	t.Setenv(NoHardwareFMAEnvVar, "")
	info := Collect()
	if info.GOOS != runtime.GOOS || info.GOARCH != runtime.GOARCH {
		t.Errorf("platform = %s/%s, want %s/%s", info.GOOS, info.GOARCH, runtime.GOOS, runtime.GOARCH)
	}
	if info.NumCPU < 1 {
		t.Errorf("NumCPU = %d", info.NumCPU)
	}
	if info.FMAMasked {
		t.Error("FMA masked with the environment variable unset")
	}
	t.Logf("\n%s", info)
}

func TestNoHardwareFMAEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv(NoHardwareFMAEnvVar, tt.val)
			if got := NoHardwareFMAEnv(); got != tt.want {
				t.Errorf("NoHardwareFMAEnv() with %q = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestMaskedFMA(t *testing.T) {
	t.Setenv(NoHardwareFMAEnvVar, "1")
	info := Collect()
	if info.HardwareFMA {
		t.Error("HardwareFMA reported while masked")
	}
	if _, fma := detectFeatures(); fma != info.FMAMasked {
		t.Errorf("FMAMasked = %v, want %v", info.FMAMasked, fma)
	}
	if info.FMAMasked && !strings.Contains(info.String(), "masked by "+NoHardwareFMAEnvVar) {
		t.Errorf("String() does not mention the mask:\n%s", info)
	}
}
