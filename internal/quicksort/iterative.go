package quicksort

// span is a pending [low, high] range on the work stack.
type span struct {
	low, high int
}

// QuicksortIterative sorts a in place in non-decreasing order using an
// explicit, heap-allocated work stack instead of recursion.
func QuicksortIterative(a []int) {
	if len(a) < 2 {
		return
	}

	stack := []span{{0, len(a) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := Partition(a, s.low, s.high)

		// Only ranges with more than one element need more work.
		if p-1 > s.low {
			stack = append(stack, span{s.low, p - 1})
		}
		if p+1 < s.high {
			stack = append(stack, span{p + 1, s.high})
		}
	}
}
