package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/fftmul/internal/progress"
)

// CalculationResult is the outcome of one multiplier run.
type CalculationResult struct {
	// Name is the display name of the multiplier (e.g., "FFT (iterative)").
	Name string
	// Result is the decimal product. It is empty if an error occurred.
	Result string
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err contains any error returned by the multiplier.
	Err error
}

// PresentationOptions configures how a product is presented.
type PresentationOptions struct {
	// DigitsA and DigitsB are the operand lengths, shown with Details.
	DigitsA, DigitsB int
	// Verbose prints the full product even when it is long.
	Verbose bool
	// Details prints timing and operand metadata.
	Details bool
	// Quiet prints the bare product only.
	Quiet bool
}

// ProgressReporter displays progress while multipliers run.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed, then calls
	// wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from multipliers.
	//   - numCalculators: The number of concurrent multipliers being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without output. Quiet
// mode and tests use it.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders results.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-multiplier summary.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the product of a successful run.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)

	// HandleError reports err and returns the matching exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
