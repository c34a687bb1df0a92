//go:build arm64

package cpuinfo

import "golang.org/x/sys/cpu"

func detectFeatures() (features []string, fma bool) {
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"fp", cpu.ARM64.HasFP},
		{"asimd", cpu.ARM64.HasASIMD},
		{"fphp", cpu.ARM64.HasFPHP},
		{"sve", cpu.ARM64.HasSVE},
	} {
		if f.ok {
			features = append(features, f.name)
		}
	}
	// FMADD is part of the ARMv8-A floating-point base.
	return features, cpu.ARM64.HasFP
}
