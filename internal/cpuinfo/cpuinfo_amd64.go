//go:build amd64

package cpuinfo

import "golang.org/x/sys/cpu"

func detectFeatures() (features []string, fma bool) {
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"sse2", cpu.X86.HasSSE2},
		{"sse41", cpu.X86.HasSSE41},
		{"avx", cpu.X86.HasAVX},
		{"fma", cpu.X86.HasFMA},
		{"avx2", cpu.X86.HasAVX2},
		{"avx512f", cpu.X86.HasAVX512F},
	} {
		if f.ok {
			features = append(features, f.name)
		}
	}
	return features, cpu.X86.HasFMA
}
