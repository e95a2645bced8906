package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	apperrors "github.com/agbru/recbench/internal/errors"
	"github.com/agbru/recbench/internal/format"
	"github.com/agbru/recbench/internal/orchestration"
	"github.com/agbru/recbench/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output. In quiet mode only result values are printed.
type CLIResultPresenter struct {
	Quiet bool
	// SharedAllocations is set when runs overlap. Allocation counters are
	// process-wide, so the table shows n/a instead of a per-run figure.
	SharedAllocations bool
}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable renders one row per run with its duration,
// allocated bytes and status.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, out io.Writer) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	fmt.Fprintln(out, RenderComparisonTable(results, p.SharedAllocations))
}

// RenderComparisonTable returns the comparison table as a string. With
// sharedAllocations the Allocated column reads n/a.
func RenderComparisonTable(results []orchestration.RunResult, sharedAllocations bool) string {
	theme := ui.GetCurrentTUITheme()
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	okStyle := cellStyle.Foreground(theme.Success)
	failStyle := cellStyle.Foreground(theme.Error)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Algorithm", "Duration", "Allocated", "Status")

	for _, res := range results {
		status := "✅ Success"
		if res.Err != nil {
			status = fmt.Sprintf("❌ Failure (%v)", res.Err)
		}
		allocated := format.FormatBytes(res.Allocated)
		if sharedAllocations {
			allocated = "n/a"
		}
		t.Row(res.Name, format.FormatExecutionDuration(res.Duration), allocated, status)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == 3 && row >= 0 && row < len(results) && results[row].Err != nil:
			return failStyle
		case col == 3:
			return okStyle
		}
		return cellStyle
	})
	return t.String()
}

// PresentStatus prints the comparison verdict. Quiet mode prints nothing.
func (p CLIResultPresenter) PresentStatus(ok bool, message string, out io.Writer) {
	if p.Quiet {
		return
	}
	if ok {
		fmt.Fprintf(out, "\n%sGlobal Status: Success. %s%s\n", ui.ColorGreen(), message, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "\n%sGlobal Status: Failure. %s%s\n", ui.ColorRed(), message, ui.ColorReset())
}

// PresentResult displays the value produced by the fastest run of a family.
func (p CLIResultPresenter) PresentResult(result orchestration.RunResult, out io.Writer) {
	if p.Quiet {
		fmt.Fprintln(out, FormatQuietResult(result))
		return
	}
	fmt.Fprintf(out, "Fastest %s: %s%s%s (%s)\n", result.Family,
		ui.ColorBlue(), result.Name, ui.ColorReset(), format.FormatExecutionDuration(result.Duration))
	DisplayResult(result, out)
}

// HandleError prints err with a category-specific message and returns the
// matching exit code.
func (p CLIResultPresenter) HandleError(err error, out io.Writer) int {
	return HandleError(err, out)
}

// HandleError prints err and returns its exit code. A nil error prints
// nothing and returns ExitSuccess.
func HandleError(err error, out io.Writer) int {
	code := apperrors.ExitCodeFor(err)
	switch code {
	case apperrors.ExitSuccess:
		return code
	case apperrors.ExitErrorTimeout:
		var te apperrors.TimeoutError
		if errors.As(err, &te) {
			fmt.Fprintf(out, "%sTimeout: %s did not finish within %s.%s\n", ui.ColorYellow(), te.Operation, te.Limit, ui.ColorReset())
		} else {
			fmt.Fprintf(out, "%sTimeout: the run exceeded its time limit.%s\n", ui.ColorYellow(), ui.ColorReset())
		}
	case apperrors.ExitErrorCanceled:
		fmt.Fprintf(out, "%sCanceled.%s\n", ui.ColorYellow(), ui.ColorReset())
	case apperrors.ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return code
}
