package fibonacci

// FibonacciRecursive returns the n-th term of the sequence using naive
// recursion. Terms 1 and 2 (and 0) are 1.
//
// Time is exponential in n and call depth is linear in n. There is no
// memoization on purpose: this is the baseline the other variants are
// measured against.
func FibonacciRecursive(n uint64) uint64 {
	if n <= 2 {
		return 1
	}
	return FibonacciRecursive(n-1) + FibonacciRecursive(n-2)
}
