//go:build linux

package metrics

import "golang.org/x/sys/unix"

// PeakRSS returns the maximum resident set size of the process in bytes,
// or 0 if it cannot be read.
func PeakRSS() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	// Linux reports ru_maxrss in kilobytes.
	return uint64(ru.Maxrss) * 1024
}
