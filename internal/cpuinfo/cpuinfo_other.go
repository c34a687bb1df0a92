//go:build !amd64 && !arm64

package cpuinfo

func detectFeatures() (features []string, fma bool) {
	return nil, false
}
