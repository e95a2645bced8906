package metrics

import (
	"runtime"
	"runtime/debug"

	"github.com/agbru/recbench/internal/logging"
)

// GCMode controls the garbage collector while a batch of runs executes.
type GCMode string

const (
	// GCModeDefault leaves the collector untouched.
	GCModeDefault GCMode = "default"
	// GCModeDisabled turns the collector off for the batch so timings carry
	// no collection pauses.
	GCModeDisabled GCMode = "disabled"
)

// gcMemoryLimitFactor bounds heap growth while the collector is off, as a
// multiple of the memory obtained from the OS when the batch starts.
const gcMemoryLimitFactor = 3

// GCController disables the garbage collector between Begin and End and
// restores the previous settings afterward.
type GCController struct {
	mode              GCMode
	originalGCPercent int
	originalMemLimit  int64
	active            bool
	logger            logging.Logger
	startStats        runtime.MemStats
	endStats          runtime.MemStats
}

// GCStats holds GC statistics for a batch.
type GCStats struct {
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// NewGCController creates a controller for mode. Unknown modes behave like
// GCModeDefault.
func NewGCController(mode GCMode) *GCController {
	return &GCController{mode: mode, active: mode == GCModeDisabled}
}

// SetLogger configures the logger for GC control events.
func (gc *GCController) SetLogger(l logging.Logger) {
	gc.logger = l
}

// Active reports whether Begin will change collector settings.
func (gc *GCController) Active() bool { return gc.active }

// Begin disables GC if the controller is active.
func (gc *GCController) Begin() {
	if !gc.active {
		return
	}
	runtime.ReadMemStats(&gc.startStats)
	gc.originalGCPercent = debug.SetGCPercent(-1)
	gc.originalMemLimit = debug.SetMemoryLimit(-1)
	// Soft memory limit as an OOM safety net.
	if limit := int64(gc.startStats.Sys) * gcMemoryLimitFactor; limit > 0 {
		debug.SetMemoryLimit(limit)
	}
	if gc.logger != nil {
		gc.logger.Debug("gc disabled",
			logging.String("mode", string(gc.mode)),
			logging.Uint64("heap_alloc_bytes", gc.startStats.HeapAlloc))
	}
}

// End restores original GC settings and triggers a collection.
func (gc *GCController) End() {
	if !gc.active {
		return
	}
	runtime.ReadMemStats(&gc.endStats)
	debug.SetGCPercent(gc.originalGCPercent)
	debug.SetMemoryLimit(gc.originalMemLimit)
	runtime.GC()
	if gc.logger != nil {
		stats := gc.Stats()
		gc.logger.Debug("gc re-enabled",
			logging.Uint64("heap_alloc_bytes", stats.HeapAlloc),
			logging.Uint64("total_alloc_bytes", stats.TotalAlloc),
			logging.Int("gc_cycles", int(stats.NumGC)))
	}
}

// Stats returns the GC statistics delta between Begin and End.
func (gc *GCController) Stats() GCStats {
	return GCStats{
		HeapAlloc:    gc.endStats.HeapAlloc,
		TotalAlloc:   gc.endStats.TotalAlloc - gc.startStats.TotalAlloc,
		NumGC:        gc.endStats.NumGC - gc.startStats.NumGC,
		PauseTotalNs: gc.endStats.PauseTotalNs - gc.startStats.PauseTotalNs,
	}
}
