package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/recbench/internal/format"
)

// headerBar is the dashboard's top line: program, version, number of runs
// and the batch clock, which stops when the batch completes.
type headerBar struct {
	version string
	runs    int
	started time.Time
	took    time.Duration
	stopped bool
	width   int
}

func newHeaderBar(version string, runs int) headerBar {
	return headerBar{version: version, runs: runs, started: time.Now()}
}

// Stop freezes the clock.
func (h *headerBar) Stop() {
	h.took = time.Since(h.started)
	h.stopped = true
}

// Restart starts the clock again for a new batch.
func (h *headerBar) Restart() {
	h.started = time.Now()
	h.took = 0
	h.stopped = false
}

func (h *headerBar) Resize(width int) { h.width = width }

// Elapsed is the batch time so far, or the final time once stopped.
func (h headerBar) Elapsed() time.Duration {
	if h.stopped {
		return h.took
	}
	return time.Since(h.started)
}

func (h headerBar) View() string {
	title := "recbench"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	line := titleStyle.Render(title) +
		versionStyle.Render(fmt.Sprintf(" | %d runs | ", h.runs)) +
		elapsedStyle.Render(format.FormatExecutionDuration(h.Elapsed()))

	pad := max(h.width-2-lipgloss.Width(line), 0)
	return headerStyle.Width(h.width).Render(line + strings.Repeat(" ", pad))
}
