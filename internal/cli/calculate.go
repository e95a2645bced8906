package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/recbench/internal/config"
	"github.com/agbru/recbench/internal/orchestration"
	"github.com/agbru/recbench/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	switch cfg.Mode {
	case config.ModeFib:
		fmt.Fprintf(out, "Computing %sF(%d)%s", ui.ColorCyan(), cfg.N, ui.ColorReset())
	case config.ModeSort:
		fmt.Fprintf(out, "Sorting %s%s%s", ui.ColorCyan(), cfg.File, ui.ColorReset())
	default:
		fmt.Fprintf(out, "Benchmarking %sF(%d)%s and %s%s%s", ui.ColorCyan(), cfg.N, ui.ColorReset(), ui.ColorCyan(), cfg.File, ui.ColorReset())
	}
	fmt.Fprintf(out, " with a timeout of %s%s%s.\n", ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays whether one variant runs or several are compared.
func PrintExecutionMode(benches []orchestration.Benchmark, parallel int, out io.Writer) {
	var modeDesc string
	switch {
	case len(benches) == 1:
		modeDesc = fmt.Sprintf("Single run of %s%s%s", ui.ColorGreen(), benches[0].Name(), ui.ColorReset())
	case parallel > 1:
		modeDesc = fmt.Sprintf("Comparison of %d variants, %d at a time", len(benches), parallel)
	default:
		modeDesc = fmt.Sprintf("Sequential comparison of %d variants", len(benches))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
