//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/recbench/internal/orchestration"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner suffix.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 20
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

// UpdateSuffix sets the suffix under the spinner's lock, since the
// animation goroutine reads it concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// ProgressState tracks which benchmarks have started and finished.
type ProgressState struct {
	done    []bool
	failed  int
	current string
}

// NewProgressState creates a state tracking numBenchmarks runs.
func NewProgressState(numBenchmarks int) *ProgressState {
	return &ProgressState{done: make([]bool, numBenchmarks)}
}

// Update applies one progress update. Out-of-range indices are ignored.
func (ps *ProgressState) Update(u orchestration.ProgressUpdate) {
	if u.Index < 0 || u.Index >= len(ps.done) {
		return
	}
	if !u.Done {
		ps.current = u.Name
		return
	}
	if !ps.done[u.Index] {
		ps.done[u.Index] = true
		if u.Err != nil {
			ps.failed++
		}
	}
}

// Completed returns the number of finished runs.
func (ps *ProgressState) Completed() int {
	n := 0
	for _, d := range ps.done {
		if d {
			n++
		}
	}
	return n
}

// Fraction returns the finished share of runs in [0, 1].
func (ps *ProgressState) Fraction() float64 {
	if len(ps.done) == 0 {
		return 0
	}
	return float64(ps.Completed()) / float64(len(ps.done))
}

// Suffix renders the spinner suffix, e.g. " ████░░ 2/5 Quicksort (iterative)".
func (ps *ProgressState) Suffix() string {
	s := fmt.Sprintf(" %s %d/%d", progressBar(ps.Fraction(), ProgressBarWidth), ps.Completed(), len(ps.done))
	if ps.current != "" && ps.Completed() < len(ps.done) {
		s += " " + ps.current
	}
	return s
}

// progressBar generates a textual progress bar of the given width.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// DisplayProgress satisfies orchestration.ProgressReporter through the func adapter.
var _ orchestration.ProgressReporter = orchestration.ProgressReporterFunc(DisplayProgress)

// DisplayProgress animates a spinner with a progress bar until progressChan
// is closed, then prints a one-line summary.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numBenchmarks int, out io.Writer) {
	defer wg.Done()
	if numBenchmarks <= 0 {
		orchestration.DrainChannel(progressChan)
		return
	}

	state := NewProgressState(numBenchmarks)
	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(state.Suffix())
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				fmt.Fprintf(out, "Completed %d/%d runs", state.Completed(), numBenchmarks)
				if state.failed > 0 {
					fmt.Fprintf(out, " (%d failed)", state.failed)
				}
				fmt.Fprintln(out)
				return
			}
			state.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(state.Suffix())
		}
	}
}
