// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplaySortRun], [DisplayProgress].
//
//   - Format* and Render* functions return a formatted string without
//     performing I/O.
//     Examples: [FormatQuietResult], [RenderComparisonTable].

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agbru/recbench/internal/dataset"
	"github.com/agbru/recbench/internal/format"
	"github.com/agbru/recbench/internal/orchestration"
	"github.com/agbru/recbench/internal/ui"
)

// FormatQuietResult returns the bare value of a run: the term for the
// Fibonacci family, the bracketed list for the quicksort family.
func FormatQuietResult(result orchestration.RunResult) string {
	if result.Family == orchestration.FamilyFibonacci {
		return strconv.FormatUint(result.Output.Term, 10)
	}
	return dataset.Format(result.Output.Sorted)
}

// DisplayResult writes the value of a run with a label.
func DisplayResult(result orchestration.RunResult, out io.Writer) {
	if result.Family == orchestration.FamilyFibonacci {
		fmt.Fprintf(out, "F(%d) = %s%d%s\n", result.Output.N, ui.ColorGreen(), result.Output.Term, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "Sorted: %s\n", dataset.Format(result.Output.Sorted))
}

// DisplaySortRun prints the loaded list, then the sorted one. With verbose
// set the run's duration is appended.
func DisplaySortRun(before []int, result orchestration.RunResult, verbose bool, out io.Writer) {
	fmt.Fprintln(out, dataset.Format(before))
	fmt.Fprintln(out, dataset.Format(result.Output.Sorted))
	if verbose {
		fmt.Fprintf(out, "%s%s in %s%s\n", ui.ColorGrey(), result.Name, format.FormatExecutionDuration(result.Duration), ui.ColorReset())
	}
}
