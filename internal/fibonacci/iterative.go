package fibonacci

// FibonacciIterative returns the n-th term of the sequence with a single
// forward loop over a two-term window. It returns the same values as
// FibonacciRecursive for every n, in linear time and constant space.
func FibonacciIterative(n uint64) uint64 {
	a, b := uint64(1), uint64(1)
	for i := uint64(3); i <= n; i++ {
		a, b = b, a+b
	}
	return b
}
