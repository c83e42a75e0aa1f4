// Package progress carries multiplication progress from the computing
// goroutines to whoever is watching: the CLI spinner, the TUI, log output or
// Prometheus.
package progress

// ProgressUpdate is the message sent over a channel from a multiplier to the
// user interface.
type ProgressUpdate struct {
	// CalculatorIndex identifies the multiplier instance, allowing the UI to
	// distinguish between concurrent runs.
	CalculatorIndex int
	// Value is the normalized progress, ranging from 0.0 to 1.0.
	Value float64
}

// ProgressCallback is the functional form used by the multiplication
// pipeline to report progress without knowing who listens.
type ProgressCallback func(progress float64)

// Stage marks a fixed point of the multiplication pipeline.
type Stage float64

// Pipeline checkpoints. The forward transforms dominate the cost, so they
// get the widest band.
const (
	StageEncoded   Stage = 0.05
	StageForward   Stage = 0.55
	StagePointwise Stage = 0.60
	StageInverse   Stage = 0.90
	StageDecoded   Stage = 1.0
)

// Report invokes cb with the stage value. A nil callback is ignored.
func (s Stage) Report(cb ProgressCallback) {
	if cb != nil {
		cb(float64(s))
	}
}
