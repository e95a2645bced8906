// Package tui implements the -tui dashboard: a bubbletea program that shows
// each benchmark run as it starts and finishes, a heap sparkline and the
// final comparison.
package tui
