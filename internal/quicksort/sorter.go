package quicksort

import (
	"fmt"
	"sort"
)

// Sorter is a named in-place sorting variant.
type Sorter interface {
	Name() string
	Sort(a []int)
}

type funcSorter struct {
	name string
	fn   func([]int)
}

// NewSorter wraps fn as a Sorter with the given display name.
func NewSorter(name string, fn func([]int)) Sorter {
	return &funcSorter{name: name, fn: fn}
}

func (s *funcSorter) Name() string { return s.name }
func (s *funcSorter) Sort(a []int) { s.fn(a) }

// Factory maps algorithm keys to sorters.
type Factory struct {
	sorters map[string]Sorter
}

// NewDefaultFactory returns a factory holding the recursive and iterative
// variants.
func NewDefaultFactory() *Factory {
	return &Factory{sorters: map[string]Sorter{
		"recursive": NewSorter("Quicksort (recursive)", QuicksortRecursive),
		"iterative": NewSorter("Quicksort (iterative)", QuicksortIterative),
	}}
}

// Get returns the sorter registered under name.
func (f *Factory) Get(name string) (Sorter, error) {
	s, ok := f.sorters[name]
	if !ok {
		return nil, fmt.Errorf("unknown quicksort algorithm %q", name)
	}
	return s, nil
}

// List returns the registered keys in sorted order.
func (f *Factory) List() []string {
	keys := make([]string, 0, len(f.sorters))
	for k := range f.sorters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
