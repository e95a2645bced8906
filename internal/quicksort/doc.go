// Package quicksort provides recursive and iterative in-place quicksort
// built on a shared Lomuto partition.
//
// Both variants mutate the slice they are given and return nothing; callers
// that need the original order must sort a copy.
package quicksort
