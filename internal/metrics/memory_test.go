package metrics

import "testing"

var retained [][]int

// Not parallel: reads process-wide counters.
func TestReadHeap_CountsSortInput(t *testing.T) {
	before := ReadHeap()
	if before.InUse == 0 || before.Allocated == 0 {
		t.Fatalf("empty heap reading %+v", before)
	}

	const n = 1 << 16
	retained = append(retained, make([]int, n))

	after := ReadHeap()
	want := uint64(n * 8)
	if got := after.AllocatedSince(before); got < want {
		t.Errorf("AllocatedSince = %d, want at least %d", got, want)
	}
	if after.GCCycles < before.GCCycles {
		t.Errorf("GC cycles went backwards: %d -> %d", before.GCCycles, after.GCCycles)
	}
}

func TestHeap_AllocatedSinceClampsReversedOrder(t *testing.T) {
	t.Parallel()
	early := Heap{Allocated: 100}
	late := Heap{Allocated: 4196}
	if got := late.AllocatedSince(early); got != 4096 {
		t.Errorf("AllocatedSince = %d, want 4096", got)
	}
	if got := early.AllocatedSince(late); got != 0 {
		t.Errorf("reversed AllocatedSince = %d, want 0", got)
	}
}
