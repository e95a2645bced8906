package tui

// sparkBlocks are the eight heights a sparkline cell can take.
const sparkBlocks = "▁▂▃▄▅▆▇█"

// heapHistory holds the most recent heap samples, oldest first.
type heapHistory struct {
	samples []uint64
	limit   int
}

func newHeapHistory(limit int) *heapHistory {
	return &heapHistory{limit: max(limit, 1)}
}

// Add records a sample, dropping the oldest once the limit is reached.
func (h *heapHistory) Add(heapBytes uint64) {
	if len(h.samples) == h.limit {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:h.limit-1]
	}
	h.samples = append(h.samples, heapBytes)
}

// Latest returns the newest sample, or 0 before the first one.
func (h *heapHistory) Latest() uint64 {
	if len(h.samples) == 0 {
		return 0
	}
	return h.samples[len(h.samples)-1]
}

func (h *heapHistory) Samples() []uint64 { return h.samples }

func (h *heapHistory) Clear() { h.samples = h.samples[:0] }

// renderSparkline draws one cell per sample, scaled between the window's
// lowest and highest values so that heap growth during a run stays visible
// on top of the process baseline. A flat window renders at the lowest height.
func renderSparkline(samples []uint64) string {
	if len(samples) == 0 {
		return ""
	}
	lo, hi := samples[0], samples[0]
	for _, s := range samples[1:] {
		lo, hi = min(lo, s), max(hi, s)
	}
	blocks := []rune(sparkBlocks)
	top := len(blocks) - 1
	cells := make([]rune, len(samples))
	for i, s := range samples {
		level := 0
		if hi > lo {
			level = int(float64(s-lo) / float64(hi-lo) * float64(top))
		}
		cells[i] = blocks[level]
	}
	return string(cells)
}
