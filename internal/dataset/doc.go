// Package dataset reads and writes the integer list files the quicksort
// benchmarks consume.
//
// # File format
//
// A file holds a single bracketed, comma-space separated list:
//
//	[3, 1, 4, 1, 5, 9, 2, 6]
//
// Load splits the whole text on ", " and discards the first and last
// segments, which for this format are the ones carrying the brackets. The
// values inside those two segments are dropped with them, so the example
// above loads as [1, 4, 1, 5, 9, 2]. A file without brackets loses its true
// first and last values the same way. This contract is kept as-is; files
// written by WriteFile follow it.
package dataset
