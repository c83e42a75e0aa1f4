package orchestration

import (
	"time"

	"github.com/agbru/fftmul/internal/format"
	"github.com/agbru/fftmul/internal/progress"
)

// ProgressAggregator averages the progress of concurrent multipliers and
// tracks an ETA. The CLI spinner and the TUI both consume updates through it.
type ProgressAggregator struct {
	state *format.ProgressWithETA
}

// NewProgressAggregator returns nil if numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressWithETA(numCalculators)}
}

// AggregatedProgress is the view of all multipliers after one update.
type AggregatedProgress struct {
	CalculatorIndex int
	// Value is the raw value of the update, in [0, 1].
	Value float64
	// AverageProgress is the mean over all multipliers.
	AverageProgress float64
	ETA             time.Duration
}

// Update records update and returns the aggregated state.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.CalculatorIndex, update.Value)
	return AggregatedProgress{
		CalculatorIndex: update.CalculatorIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without recording anything.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA without recording anything.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// DrainChannel discards updates until progressChan is closed.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
