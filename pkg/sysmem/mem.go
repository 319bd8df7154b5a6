// Package sysmem provides cross-platform system memory detection.
//
// keystat maps the whole input into memory, so the CLI compares the input
// size against total system RAM to warn before a run that will page.
// Detection uses platform-specific methods with a safe fallback.
package sysmem

// DefaultMemoryBytes is the fallback memory value (4 GB) used when
// platform-specific detection fails or is unsupported.
const DefaultMemoryBytes uint64 = 4 * 1024 * 1024 * 1024

// Result holds the result of memory detection.
type Result struct {
	// TotalBytes is the total system memory in bytes.
	TotalBytes uint64

	// Reliable indicates whether the value came from a platform-specific
	// method (true) or is the fallback default (false).
	Reliable bool
}

// Total returns the total system memory. If platform-specific detection
// fails or is unsupported, it returns DefaultMemoryBytes with
// Reliable=false.
func Total() Result {
	bytes, ok := totalSystemMemory()
	if !ok || bytes == 0 {
		return Result{
			TotalBytes: DefaultMemoryBytes,
			Reliable:   false,
		}
	}
	return Result{
		TotalBytes: bytes,
		Reliable:   true,
	}
}
