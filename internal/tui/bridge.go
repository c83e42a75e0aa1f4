package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/orchestration"
	"github.com/agbru/fftmul/internal/progress"
)

// programRef is a shared reference to the tea.Program. Bubbletea copies the
// model on every Update, so the bridge goroutines hold this pointer instead.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program. It is a no-op before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter implements orchestration.ProgressReporter by
// forwarding aggregated updates as ProgressMsg.
type TUIProgressReporter struct {
	ref *programRef
	gen uint64
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains progressChan, then sends ProgressDoneMsg.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	for update := range progressChan {
		ap := agg.Update(update)
		t.ref.Send(ProgressMsg{
			CalculatorIndex: ap.CalculatorIndex,
			Value:           ap.Value,
			AverageProgress: ap.AverageProgress,
			ETA:             ap.ETA,
			Generation:      t.gen,
		})
	}
	t.ref.Send(ProgressDoneMsg{Generation: t.gen})
}

// TUIResultPresenter implements orchestration.ResultPresenter by sending
// results to the dashboard instead of writing them.
type TUIResultPresenter struct {
	ref *programRef
	gen uint64
}

var _ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentComparisonTable sends the per-multiplier results.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results, Generation: t.gen})
}

// PresentResult sends the reference product.
func (t *TUIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, _ io.Writer) {
	t.ref.Send(FinalResultMsg{Result: result, Options: opts, Generation: t.gen})
}

// HandleError sends err to the dashboard and returns its exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Err: err, Duration: duration, Generation: t.gen})
	return apperrors.HandleCalculationError(err, duration, io.Discard, nil)
}
