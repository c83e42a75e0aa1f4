package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fftmul/internal/config"
	"github.com/agbru/fftmul/internal/format"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/spectral"
	"github.com/agbru/fftmul/internal/ui"
)

// PrintExecutionConfig displays the operand sizes, the timeout, the host and
// the parallel threshold.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Multiplying %s%s%s × %s%s%s digits with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), format.FormatNumberString(fmt.Sprint(len(cfg.A))), ui.ColorReset(),
		ui.ColorMagenta(), format.FormatNumberString(fmt.Sprint(len(cfg.B))), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "%s.\n", spectral.DetectCPUFeatures())
	threshold := "disabled"
	if cfg.Threshold > 0 {
		threshold = fmt.Sprintf("%d samples", cfg.Threshold)
	}
	fmt.Fprintf(out, "Parallel threshold: %s%s%s.\n", ui.ColorCyan(), threshold, ui.ColorReset())
}

// PrintExecutionMode displays whether one multiplier runs or all of them are
// compared.
func PrintExecutionMode(multipliers []multiply.Multiplier, out io.Writer) {
	var modeDesc string
	if len(multipliers) > 1 {
		modeDesc = "Parallel comparison of all algorithms"
	} else {
		modeDesc = fmt.Sprintf("Single multiplication with the %s%s%s algorithm",
			ui.ColorGreen(), multipliers[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
