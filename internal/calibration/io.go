package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/fftmul/internal/format"
	"github.com/agbru/fftmul/internal/ui"
)

func thresholdLabel(threshold int) string {
	if threshold == Sequential {
		return "Sequential"
	}
	return fmt.Sprintf("%d samples", threshold)
}

// printCalibrationResults prints one row per candidate and marks the best.
func printCalibrationResults(out io.Writer, results []calibrationResult, bestThreshold int) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sThreshold%s        │ %sExecution Time%s\n", ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s┼%s\n", strings.Repeat("─", 18), strings.Repeat("─", 25))
	for _, res := range results {
		durationStr := fmt.Sprintf("%sN/A%s", ui.ColorRed(), ui.ColorReset())
		if res.Err == nil {
			durationStr = format.FormatExecutionDuration(res.Duration)
		}
		highlight := ""
		if res.Threshold == bestThreshold && res.Err == nil {
			highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%-16s%s │ %s%s%s%s\n", ui.ColorCyan(), thresholdLabel(res.Threshold), ui.ColorReset(), ui.ColorYellow(), durationStr, ui.ColorReset(), highlight)
	}
	tw.Flush()
}
