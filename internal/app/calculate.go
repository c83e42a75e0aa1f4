package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/agbru/fftmul/internal/cli"
	"github.com/agbru/fftmul/internal/config"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/metrics"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/orchestration"
	"github.com/agbru/fftmul/internal/sysmon"
)

// lifecycle bounds ctx by the configured timeout and cancels it on SIGINT
// or SIGTERM.
func (a *Application) lifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// checkMemoryHeadroom warns when the transform buffers of all concurrent
// runs may not fit in the available memory.
func checkMemoryHeadroom(ctx context.Context, digitsA, digitsB, runs int) {
	need := metrics.EstimateTransformMemory(digitsA, digitsB) * uint64(runs)
	if stats := sysmon.SampleContext(ctx); !stats.Fits(need) {
		log.Warn().
			Uint64("needed_bytes", need).
			Uint64("available_bytes", stats.MemAvailable).
			Msg("transform buffers may exceed available memory")
	}
}

// runCalculate multiplies the command-line operands with every selected
// multiplier and compares the products.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	multipliers := orchestration.GetCalculatorsToRun(a.Config, a.Factory)
	if len(multipliers) == 0 {
		fmt.Fprintf(a.ErrWriter, "No multiplier selected for %q.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	checkMemoryHeadroom(ctx, len(a.Config.A), len(a.Config.B), len(multipliers))

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(multipliers, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	results := orchestration.ExecuteCalculations(ctx, multipliers, a.Config, progressReporter, progressOut)
	memDelta := collector.Since(before)

	presOpts := orchestration.PresentationOptions{
		DigitsA: len(a.Config.A),
		DigitsB: len(a.Config.B),
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
		Quiet:   a.Config.Quiet,
	}
	outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet}

	best := findBestResult(results)
	if a.Config.Quiet {
		if best == nil {
			return cli.CLIResultPresenter{}.HandleError(results[0].Err, results[0].Duration, a.ErrWriter)
		}
		cli.DisplayQuietResult(out, best.Result)
		return a.saveResult(out, *best, presOpts, outputCfg, apperrors.ExitSuccess)
	}

	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, out)
	if a.Config.Details {
		cli.DisplayMemoryStats(memDelta, out)
	}
	if best == nil || exitCode != apperrors.ExitSuccess {
		return exitCode
	}
	return a.saveResult(out, *best, presOpts, outputCfg, exitCode)
}

func (a *Application) saveResult(out io.Writer, best orchestration.CalculationResult, opts orchestration.PresentationOptions, cfg cli.OutputConfig, exitCode int) int {
	if err := cli.SaveResult(out, best, opts, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return exitCode
}

// findBestResult returns the fastest successful result, or nil. The slice is
// not reordered.
func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var best *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil && (best == nil || results[i].Duration < best.Duration) {
			best = &results[i]
		}
	}
	return best
}

// runBatch multiplies the operand pairs read from the batch input with a
// single multiplier.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	in := a.In
	if a.Config.Input != "" && a.Config.Input != "-" {
		f, err := os.Open(a.Config.Input)
		if err != nil {
			fmt.Fprintf(a.ErrWriter, "Error opening batch input: %v\n", err)
			return apperrors.ExitErrorConfig
		}
		defer f.Close()
		in = f
	}

	algo := a.Config.Algo
	if algo == config.AllAlgorithms {
		algo = multiply.NameFFTIterative
	}
	m, err := a.Factory.Get(algo)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	if err := cli.RunBatch(ctx, in, out, m, a.Config.ToMultiplyOptions()); err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, a.ErrWriter)
	}
	return apperrors.ExitSuccess
}
