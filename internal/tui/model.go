package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/recbench/internal/dataset"
	apperrors "github.com/agbru/recbench/internal/errors"
	"github.com/agbru/recbench/internal/format"
	"github.com/agbru/recbench/internal/metrics"
	"github.com/agbru/recbench/internal/orchestration"
)

// Layout and sampling constants.
const (
	tickInterval    = 500 * time.Millisecond
	heapSamples     = 60
	minPanelWidth   = 40
	resultMaxLength = 200
)

type runState int

const (
	statePending runState = iota
	stateRunning
	stateDone
	stateFailed
)

// runRow is one benchmark line of the runs panel.
type runRow struct {
	name      string
	family    string
	state     runState
	duration  time.Duration
	allocated uint64
	err       error
}

// ExecutionState holds the execution-related fields of a dashboard session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	benches    []orchestration.Benchmark
	opts       orchestration.Options
	generation uint64
	done       bool
	exitCode   int
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	header  headerBar
	spinner spinner.Model
	keymap  KeyMap

	rows    []runRow
	cursor  int
	heap    *heapHistory
	numGC   uint32
	results []string
	status   string
	statusOK bool
	errText  string

	ExecutionState

	parentCtx context.Context
	ref       *programRef
	width     int
	height    int
}

// NewModel creates a dashboard for benches.
func NewModel(parentCtx context.Context, benches []orchestration.Benchmark, opts orchestration.Options, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		header:  newHeaderBar(version, len(benches)),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(runningStyle)),
		keymap:  DefaultKeyMap(),
		rows:    newRows(benches),
		heap:    newHeapHistory(heapSamples),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			benches:  benches,
			opts:     opts,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		ref:       &programRef{},
	}
}

func newRows(benches []orchestration.Benchmark) []runRow {
	rows := make([]runRow, len(benches))
	for i, b := range benches {
		rows[i] = runRow{name: b.Name(), family: b.Family()}
	}
	return rows
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(),
		startRunsCmd(m.ref, m.ctx, m.benches, m.opts, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.Resize(msg.Width)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RunStartedMsg:
		if msg.Generation == m.generation && msg.Index >= 0 && msg.Index < len(m.rows) {
			m.rows[msg.Index].state = stateRunning
		}
		return m, nil

	case RunFinishedMsg:
		if msg.Generation == m.generation && msg.Index >= 0 && msg.Index < len(m.rows) {
			m.rows[msg.Index].state = stateDone
			if msg.Err != nil {
				m.rows[msg.Index].state = stateFailed
				m.rows[msg.Index].err = msg.Err
			}
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ComparisonResultsMsg:
		m.applyResults(msg.Results)
		return m, nil

	case StatusMsg:
		m.status = msg.Message
		m.statusOK = msg.OK
		return m, nil

	case FinalResultMsg:
		m.results = append(m.results, formatFinalResult(msg.Result))
		return m, nil

	case ErrorMsg:
		m.errText = msg.Err.Error()
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleMemStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.heap.Add(msg.HeapAlloc)
		m.numGC = msg.NumGC
		return m, nil

	case CompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		m.header.Stop()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if !m.done {
			m.done = true
			m.exitCode = apperrors.ExitCodeFor(msg.Err)
			m.header.Stop()
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		if !m.done {
			m.exitCode = apperrors.ExitErrorCanceled
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Reset):
		if !m.done {
			return m, nil
		}
		m.cancel()
		m.generation++
		ctx, cancel := context.WithCancel(m.parentCtx)
		m.ctx = ctx
		m.cancel = cancel

		m.header.Restart()
		m.rows = newRows(m.benches)
		m.results = nil
		m.status = ""
		m.statusOK = false
		m.errText = ""
		m.heap.Clear()
		m.done = false
		m.exitCode = apperrors.ExitSuccess

		return m, tea.Batch(
			tickCmd(),
			startRunsCmd(m.ref, m.ctx, m.benches, m.opts, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil
	}

	return m, nil
}

// applyResults copies durations and allocations onto the matching rows.
func (m *Model) applyResults(results []orchestration.RunResult) {
	for _, res := range results {
		for i := range m.rows {
			if m.rows[i].name == res.Name && m.rows[i].family == res.Family {
				m.rows[i].duration = res.Duration
				m.rows[i].allocated = res.Allocated
				if res.Err != nil {
					m.rows[i].state = stateFailed
					m.rows[i].err = res.Err
				} else {
					m.rows[i].state = stateDone
				}
			}
		}
	}
}

func formatFinalResult(res orchestration.RunResult) string {
	var value string
	if res.Family == orchestration.FamilyFibonacci {
		value = fmt.Sprintf("F(%d) = %d", res.Output.N, res.Output.Term)
	} else {
		value = dataset.Format(res.Output.Sorted)
		if len(value) > resultMaxLength {
			value = value[:resultMaxLength] + "…"
		}
	}
	return fmt.Sprintf("Fastest %s: %s (%s)\n  %s", res.Family, res.Name, format.FormatExecutionDuration(res.Duration), value)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	width := max(m.width-2, minPanelWidth)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		panelStyle.Width(width).Render(m.renderRuns()),
		panelStyle.Width(width).Render(m.renderMemory()),
		m.renderFooter(),
	)
}

// verdictStyle colors the comparison verdict by outcome.
func verdictStyle(ok bool) lipgloss.Style {
	if ok {
		return statusDoneStyle
	}
	return statusErrorStyle
}

func (m Model) renderRuns() string {
	nameWidth := 0
	for _, r := range m.rows {
		nameWidth = max(nameWidth, lipgloss.Width(r.name))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Runs"))
	for i, r := range m.rows {
		b.WriteByte('\n')
		var marker, status string
		switch r.state {
		case statePending:
			marker, status = pendingStyle.Render("·"), pendingStyle.Render("pending")
		case stateRunning:
			marker, status = m.spinner.View(), runningStyle.Render("running")
		case stateDone:
			marker = doneStyle.Render("✓")
			allocated := format.FormatBytes(r.allocated)
			if m.opts.Parallelism > 1 {
				allocated = "n/a"
			}
			status = doneStyle.Render(format.FormatExecutionDuration(r.duration) + "  " + allocated)
		case stateFailed:
			marker, status = failedStyle.Render("✗"), failedStyle.Render(r.err.Error())
		}
		style := rowStyle
		if i == m.cursor {
			style = rowSelectedStyle
		}
		fmt.Fprintf(&b, "%s %s  %s", marker, style.Render(r.name+strings.Repeat(" ", nameWidth-lipgloss.Width(r.name))), status)
	}
	if m.status != "" {
		b.WriteString("\n\n" + verdictStyle(m.statusOK).Render(m.status))
	}
	for _, res := range m.results {
		b.WriteString("\n\n" + doneStyle.Render(res))
	}
	if m.errText != "" {
		b.WriteString("\n\n" + failedStyle.Render("Error: "+m.errText))
	}
	return b.String()
}

func (m Model) renderMemory() string {
	return fmt.Sprintf("%s %s   %s %s   %s %s\n%s",
		metricLabelStyle.Render("Heap:"), metricValueStyle.Render(format.FormatBytes(m.heap.Latest())),
		metricLabelStyle.Render("GC cycles:"), metricValueStyle.Render(fmt.Sprint(m.numGC)),
		metricLabelStyle.Render("Peak RSS:"), metricValueStyle.Render(format.FormatBytes(metrics.PeakRSS())),
		sparklineStyle.Render(renderSparkline(m.heap.Samples())))
}

func (m Model) renderFooter() string {
	var status string
	switch {
	case !m.done:
		status = statusRunningStyle.Render("RUNNING")
	case m.exitCode != apperrors.ExitSuccess:
		status = statusErrorStyle.Render("FAILED")
	default:
		status = statusDoneStyle.Render("DONE")
	}
	parts := []string{status}
	for _, kb := range m.keymap.ShortHelp() {
		h := kb.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return " " + strings.Join(parts, "  ")
}

// Run is the public entry point for the dashboard mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, benches []orchestration.Benchmark, opts orchestration.Options, version string) int {
	initTUIStyles()

	model := NewModel(ctx, benches, opts, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitCodeFor(err)
	}
	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startRunsCmd returns a tea.Cmd that executes and analyzes the benchmarks.
func startRunsCmd(ref *programRef, ctx context.Context, benches []orchestration.Benchmark, opts orchestration.Options, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		presenter := &TUIResultPresenter{ref: ref}
		results := orchestration.ExecuteBenchmarks(ctx, benches, opts, reporter, io.Discard)
		exitCode := orchestration.AnalyzeComparisonResults(results, presenter, io.Discard)
		return CompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads the runtime heap and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		h := metrics.ReadHeap()
		return MemStatsMsg{HeapAlloc: h.InUse, NumGC: h.GCCycles}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
