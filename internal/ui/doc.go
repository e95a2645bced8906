// Package ui provides theme and color support for terminal output. It
// defines ANSI color schemes shared by the CLI presenter and the lipgloss
// palette used by the dashboard.
package ui
