package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/fftmul/internal/config"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/progress"
)

// ProgressBufferMultiplier sizes the progress channel per multiplier so that
// a slow display rarely causes dropped updates.
const ProgressBufferMultiplier = 5

// ExecuteCalculations runs every multiplier concurrently on cfg.A and cfg.B.
//
// Each multiplier reports progress under its slice index through a
// ChannelObserver feeding progressReporter. Errors are recorded in the
// results and never cancel the other runs.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - multipliers: The multipliers to execute.
//   - cfg: The application configuration (operands and options).
//   - progressReporter: The progress display (NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []CalculationResult: One result per multiplier, in input order.
func ExecuteCalculations(ctx context.Context, multipliers []multiply.Multiplier, cfg config.AppConfig, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	results := make([]CalculationResult, len(multipliers))
	progressChan := make(chan progress.ProgressUpdate, len(multipliers)*ProgressBufferMultiplier)

	subject := progress.NewProgressSubject()
	subject.Register(progress.NewChannelObserver(progressChan))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	opts := cfg.ToMultiplyOptions()
	var g errgroup.Group
	for i, m := range multipliers {
		g.Go(func() error {
			start := time.Now()
			product, err := m.MultiplyWithObservers(ctx, subject, i, cfg.A, cfg.B, opts)
			results[i] = CalculationResult{
				Name: m.Name(), Result: product, Duration: time.Since(start), Err: err,
			}
			log.Debug().Str("algorithm", m.Name()).Dur("duration", results[i].Duration).Err(err).Msg("multiplier finished")
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults sorts results by success then duration, prints the
// comparison table and checks that every successful product is identical.
//
// Parameters:
//   - results: The results to analyze. The slice is sorted in place.
//   - opts: Presentation options for the final product.
//   - presenter: The result presenter.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: apperrors.ExitSuccess, ExitErrorMismatch when products differ, or
//     the exit code of the first error when every run failed.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CalculationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the multiplication.\n")
		return presenter.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Result != firstValid.Result {
			log.Error().Str("reference", firstValid.Name).Str("algorithm", res.Name).Msg("product mismatch")
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The algorithms returned different products.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValid, opts, out)
	return apperrors.ExitSuccess
}
