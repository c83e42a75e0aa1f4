//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fftmul/internal/format"
	"github.com/agbru/fftmul/internal/metrics"
	"github.com/agbru/fftmul/internal/orchestration"
	"github.com/agbru/fftmul/internal/progress"
	"github.com/agbru/fftmul/internal/ui"
)

const (
	// TruncationLimit is the digit count from which a product is truncated
	// on standard output.
	TruncationLimit = 100
	// DisplayEdges is the number of leading and trailing digits kept when a
	// product is truncated.
	DisplayEdges = 25
	// ProgressRefreshRate is the spinner and progress bar refresh period.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

func progressLabel(numCalculators int) string {
	if numCalculators > 1 {
		return "Avg progress"
	}
	return "Progress"
}

// DisplayProgress renders a spinner with an aggregated progress bar and ETA
// until progressChan is closed. It then prints a final 100% line and calls
// wg.Done. With no multipliers to track it only drains the channel.
//
// Parameters:
//   - wg: A WaitGroup to signal when the display routine is complete.
//   - progressChan: The channel receiving progress updates.
//   - numCalculators: The number of multipliers contributing to the progress.
//   - out: The io.Writer to which the progress bar is rendered.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	stopped := false
	defer func() {
		if !stopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	label := progressLabel(numCalculators)
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				stopped = true
				fmt.Fprintf(out, "%s: %s\n", label, format.FormatProgressBarWithETA(1.0, 0, ProgressBarWidth))
				return
			}
			agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(fmt.Sprintf(" %s: %s", label,
				format.FormatProgressBarWithETA(agg.CalculateAverage(), agg.GetETA(), ProgressBarWidth)))
		}
	}
}

// DisplayResult prints a product. Products longer than TruncationLimit are
// truncated unless opts.Verbose is set. With opts.Details it also prints the
// timing, the operand lengths and the transform size.
//
// Parameters:
//   - product: The decimal product.
//   - duration: The time taken by the multiplication.
//   - opts: Presentation options.
//   - out: The io.Writer for the output.
func DisplayResult(product string, duration time.Duration, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "Product size: %s%s%s digits.\n",
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(len(product))), ui.ColorReset())

	if opts.Details {
		fmt.Fprintf(out, "\n%s--- Detailed result analysis ---%s\n", ui.ColorBold(), ui.ColorReset())
		durationStr := format.FormatExecutionDuration(duration)
		if duration == 0 {
			durationStr = "< 1µs"
		}
		fmt.Fprintf(out, "Multiplication time : %s%s%s\n", ui.ColorGreen(), durationStr, ui.ColorReset())
		fmt.Fprintf(out, "Operand digits      : %s%s × %s%s\n", ui.ColorCyan(),
			format.FormatNumberString(fmt.Sprint(opts.DigitsA)),
			format.FormatNumberString(fmt.Sprint(opts.DigitsB)), ui.ColorReset())
		fmt.Fprintf(out, "Transform length    : %s%s%s\n", ui.ColorCyan(),
			format.FormatNumberString(fmt.Sprint(metrics.TransformLength(opts.DigitsA, opts.DigitsB))), ui.ColorReset())
		fmt.Fprintf(out, "Transform memory    : %s%s%s\n", ui.ColorCyan(),
			format.FormatBytes(metrics.EstimateTransformMemory(opts.DigitsA, opts.DigitsB)), ui.ColorReset())
	}

	fmt.Fprintf(out, "\n%s--- Product ---%s\n", ui.ColorBold(), ui.ColorReset())
	switch {
	case opts.Verbose || len(product) <= TruncationLimit:
		fmt.Fprintf(out, "A × B = %s%s%s\n", ui.ColorGreen(), product, ui.ColorReset())
	default:
		fmt.Fprintf(out, "A × B (truncated) = %s%s%s\n",
			ui.ColorGreen(), format.TruncateDigits(product, TruncationLimit, DisplayEdges), ui.ColorReset())
		fmt.Fprintf(out, "(Tip: use the %s-v%s option to display the full value)\n", ui.ColorYellow(), ui.ColorReset())
	}
}
