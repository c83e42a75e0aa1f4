package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps the time estimate so a stalled calculation does not report
// absurd values.
const maxETA = 24 * time.Hour

// ProgressState encapsulates the aggregated progress of concurrent
// calculations. It keeps one slot per calculator and reports the average.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates a ProgressState tracking numCalculators slots.
func NewProgressState(numCalculators int) *ProgressState {
	if numCalculators < 0 {
		numCalculators = 0
	}
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records a new progress value for a specific calculator. Out of range
// indices are ignored and values are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = clamp01(value)
}

// CalculateAverage computes the average progress across all tracked calculators.
//
// Returns:
//   - float64: The average progress (0.0 to 1.0).
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numCalculators == 0 {
		return 0.0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numCalculators)
}

// ProgressWithETA extends ProgressState with time estimation capabilities.
// The progress rate is smoothed exponentially between updates.
type ProgressWithETA struct {
	*ProgressState
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64 // progress per second
}

// NewProgressWithETA creates a new progress tracker with ETA calculation.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numCalculators),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA updates progress for a specific calculator and calculates ETA.
//
// Parameters:
//   - index: The index of the calculator (0 to numCalculators-1).
//   - value: The new progress value (0.0 to 1.0).
//
// Returns:
//   - progress: The current average progress (0.0 to 1.0).
//   - eta: The estimated time remaining, or 0 if not enough data is available.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (progress float64, eta time.Duration) {
	p.Update(index, value)
	progress = p.CalculateAverage()

	now := time.Now()
	elapsed := now.Sub(p.startTime)
	if elapsed < 100*time.Millisecond || progress <= 0.001 {
		p.lastUpdate = now
		p.lastProgress = progress
		return progress, 0
	}

	sinceUpdate := now.Sub(p.lastUpdate).Seconds()
	if sinceUpdate > 0.05 {
		if delta := progress - p.lastProgress; delta > 0 {
			instant := delta / sinceUpdate
			if p.progressRate > 0 {
				p.progressRate = 0.7*p.progressRate + 0.3*instant
			} else {
				p.progressRate = progress / elapsed.Seconds()
			}
		}
		p.lastUpdate = now
		p.lastProgress = progress
	}

	return progress, p.etaFor(progress)
}

// GetETA returns the current ETA without updating progress.
func (p *ProgressWithETA) GetETA() time.Duration {
	return p.etaFor(p.CalculateAverage())
}

func (p *ProgressWithETA) etaFor(progress float64) time.Duration {
	if p.progressRate <= 0 || progress >= 1.0 {
		return 0
	}
	eta := time.Duration((1.0 - progress) / p.progressRate * float64(time.Second))
	if eta > maxETA {
		eta = maxETA
	}
	return eta
}

// ProgressBar renders a textual progress bar of the given length.
func ProgressBar(progress float64, length int) string {
	progress = clamp01(progress)
	count := int(progress * float64(length))
	var b strings.Builder
	b.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			b.WriteRune('█')
		} else {
			b.WriteRune('░')
		}
	}
	return b.String()
}

// FormatProgressBarWithETA generates a formatted progress string with ETA,
// like "45.00% [████░░░░] ETA: 2m30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%6.2f%% [%s] ETA: %s", progress*100, ProgressBar(progress, width), FormatETA(eta))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
