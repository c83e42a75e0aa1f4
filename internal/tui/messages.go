package tui

import (
	"time"

	"github.com/agbru/fftmul/internal/orchestration"
)

// ProgressMsg carries one aggregated progress update.
type ProgressMsg struct {
	CalculatorIndex int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
	Generation      uint64
}

// ProgressDoneMsg is sent once the progress channel is closed.
type ProgressDoneMsg struct {
	Generation uint64
}

// ComparisonResultsMsg carries the sorted results of every multiplier.
type ComparisonResultsMsg struct {
	Results    []orchestration.CalculationResult
	Generation uint64
}

// FinalResultMsg carries the reference product once all results agree.
type FinalResultMsg struct {
	Result     orchestration.CalculationResult
	Options    orchestration.PresentationOptions
	Generation uint64
}

// ErrorMsg reports that no multiplier succeeded.
type ErrorMsg struct {
	Err        error
	Duration   time.Duration
	Generation uint64
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg is a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg is a system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// CalculationCompleteMsg ends a run. Run messages carrying an older
// Generation are ignored after a reset.
type CalculationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg reports the cancellation of a run's context.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
