// Package metrics collects runtime and per-run measurements and exposes
// them through a prometheus registry.
package metrics

import "runtime"

// Heap is the slice of runtime.MemStats a benchmark run and the dashboard
// care about.
type Heap struct {
	InUse     uint64
	Allocated uint64 // cumulative, never decreases
	GCCycles  uint32
}

// ReadHeap stops the world briefly to read the current heap counters.
func ReadHeap() Heap {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Heap{InUse: m.HeapAlloc, Allocated: m.TotalAlloc, GCCycles: m.NumGC}
}

// AllocatedSince is the number of heap bytes allocated between earlier and
// h, counted across the whole process.
func (h Heap) AllocatedSince(earlier Heap) uint64 {
	if h.Allocated < earlier.Allocated {
		return 0
	}
	return h.Allocated - earlier.Allocated
}
