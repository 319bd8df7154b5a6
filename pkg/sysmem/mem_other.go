//go:build !linux && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly

package sysmem

// totalSystemMemory returns a fallback for unsupported platforms.
// Returning false triggers the default fallback in Total.
func totalSystemMemory() (uint64, bool) {
	return 0, false
}
