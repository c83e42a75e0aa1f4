package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/format"
	"github.com/agbru/fftmul/internal/metrics"
	"github.com/agbru/fftmul/internal/orchestration"
	"github.com/agbru/fftmul/internal/progress"
	"github.com/agbru/fftmul/internal/ui"
)

// CLIProgressReporter renders progress with a spinner and a progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter renders colorized results on a terminal.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable prints one row per multiplier with its duration and
// status. Padding is computed on the visible text so that color codes do not
// break the alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := len("Algorithm")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxDurationLen = max(maxDurationLen, len(displayDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-9),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		status := fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		duration := displayDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight appends length spaces to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult prints the product, or only its digits in quiet mode.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, result.Result)
		return
	}
	DisplayResult(result.Result, result.Duration, opts, out)
}

// HandleError reports err with the theme colors and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, ui.ThemeColors{})
}

// DisplayMemoryStats prints the allocation activity of a run.
func DisplayMemoryStats(delta metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(delta.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(delta.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", delta.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(delta.PauseTotalNs)/1e6)
}
