package quicksort

// Partition rearranges a[low:high+1] around the pivot a[high] and returns the
// pivot's final index p. Afterwards every element left of p is <= a[p] and
// every element right of p is >= a[p]. It does not allocate.
func Partition(a []int, low, high int) int {
	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if a[j] <= pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]
	return i + 1
}
