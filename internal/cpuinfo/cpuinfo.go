// Package cpuinfo reports the runtime environment a libm build runs on.
//
// The libm functions are pure software and never consult these flags; they
// exist so that accuracy reports can say whether the machine's own fused
// multiply-add was available for comparison.
package cpuinfo

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// NoHardwareFMAEnvVar names the environment variable that masks the hardware
// FMA flag, as if the CPU lacked the instruction.
const NoHardwareFMAEnvVar = "LIBM_NO_HWFMA"

// Info describes the host.
type Info struct {
	GOOS, GOARCH string
	GoVersion    string
	NumCPU       int

	// Features lists the floating-point related CPU features detected.
	Features []string

	// HardwareFMA is true when the CPU has a fused multiply-add instruction
	// and NoHardwareFMAEnv does not mask it.
	HardwareFMA bool
	FMAMasked   bool
}

// Collect gathers Info for the running process.
func Collect() Info {
	info := Info{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
	}
	info.Features, info.HardwareFMA = detectFeatures()
	if info.HardwareFMA && NoHardwareFMAEnv() {
		info.HardwareFMA = false
		info.FMAMasked = true
	}
	return info
}

// NoHardwareFMAEnv checks if the LIBM_NO_HWFMA environment variable is set.
// Any non-empty value that does not parse as false counts as set.
func NoHardwareFMAEnv() bool {
	val := os.Getenv(NoHardwareFMAEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "platform:  %s/%s\n", i.GOOS, i.GOARCH)
	fmt.Fprintf(&b, "go:        %s\n", i.GoVersion)
	fmt.Fprintf(&b, "cpus:      %d\n", i.NumCPU)
	features := "none"
	if len(i.Features) > 0 {
		features = strings.Join(i.Features, " ")
	}
	fmt.Fprintf(&b, "features:  %s\n", features)
	fma := "no"
	switch {
	case i.HardwareFMA:
		fma = "yes"
	case i.FMAMasked:
		fma = "masked by " + NoHardwareFMAEnvVar
	}
	fmt.Fprintf(&b, "hw fma:    %s\n", fma)
	return b.String()
}
