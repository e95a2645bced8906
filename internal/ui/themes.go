package ui

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the ANSI escapes the CLI writes around each kind of text.
// Every field is empty in NoColorTheme.
type Theme struct {
	Name      string
	Primary   string // variant names
	Secondary string // before/after lists in verbose sort output
	Success   string // agreeing verdicts, completed runs
	Warning   string // durations, timeouts, cancellation
	Error     string // failures and mismatches
	Info      string // file paths, term indices
	Reset     string
}

// TUITheme is the lipgloss palette for the comparison table and dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTheme is the default 256-color palette.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;51m",
		Reset:     "\033[0m",
	}

	// NoColorTheme is selected by -no-color or NO_COLOR.
	NoColorTheme = Theme{Name: "none"}

	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#4488FF"),
		Accent:  lipgloss.Color("#FFB347"),
		Success: lipgloss.Color("#9ece6a"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// colorless is read by every presenter goroutine and written by InitTheme.
var colorless atomic.Bool

// InitTheme turns colors off when noColor is set or the NO_COLOR variable
// exists (https://no-color.org/), and on otherwise.
func InitTheme(noColor bool) {
	_, envSet := os.LookupEnv("NO_COLOR")
	colorless.Store(noColor || envSet)
}

// GetCurrentTheme returns the ANSI palette selected by InitTheme.
func GetCurrentTheme() Theme {
	if colorless.Load() {
		return NoColorTheme
	}
	return DarkTheme
}

// GetCurrentTUITheme returns the lipgloss palette selected by InitTheme.
func GetCurrentTUITheme() TUITheme {
	if colorless.Load() {
		return NoColorTUITheme
	}
	return DarkTUITheme
}
