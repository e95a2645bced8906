package quicksort

// QuicksortRecursive sorts a in place in non-decreasing order.
//
// Recursion depth is O(n) on already-sorted or reverse-sorted input, bounded
// only by the runtime's maximum stack size (see runtime/debug.SetMaxStack).
func QuicksortRecursive(a []int) {
	quicksortRange(a, 0, len(a)-1)
}

func quicksortRange(a []int, low, high int) {
	if low < high {
		p := Partition(a, low, high)
		quicksortRange(a, low, p-1)
		quicksortRange(a, p+1, high)
	}
}
