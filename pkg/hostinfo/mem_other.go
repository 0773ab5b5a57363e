//go:build !linux && !darwin

package hostinfo

func totalSystemMemory() (uint64, bool) {
	return 0, false
}
