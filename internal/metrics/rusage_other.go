//go:build !linux

package metrics

// PeakRSS is not implemented on this platform and always returns 0.
func PeakRSS() uint64 { return 0 }
