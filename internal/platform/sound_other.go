//go:build !linux && !darwin && !windows

package platform

func playNative() bool {
	return false
}
