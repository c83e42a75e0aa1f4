package calibration

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/agbru/fftmul/internal/multiply"
)

// calibrationResult is the measured outcome for one threshold candidate.
type calibrationResult struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// runner times one multiplier across threshold candidates on a fixed pair of
// operands, bounding every trial with trialTimeout.
type runner struct {
	m            multiply.Multiplier
	a, b         string
	trialTimeout time.Duration
	base         multiply.Options
}

func newRunner(m multiply.Multiplier, digits int, trialTimeout time.Duration, base multiply.Options) *runner {
	rng := rand.New(rand.NewPCG(uint64(digits), 0x9e3779b97f4a7c15))
	return &runner{
		m:            m,
		a:            randomOperand(rng, digits),
		b:            randomOperand(rng, digits),
		trialTimeout: trialTimeout,
		base:         base,
	}
}

// randomOperand returns a digits-long decimal string without a leading zero.
func randomOperand(rng *rand.Rand, digits int) string {
	if digits <= 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(digits)
	sb.WriteByte(byte('1' + rng.IntN(9)))
	for i := 1; i < digits; i++ {
		sb.WriteByte(byte('0' + rng.IntN(10)))
	}
	return sb.String()
}

func (r *runner) measure(ctx context.Context, threshold int) calibrationResult {
	trialCtx, cancel := context.WithTimeout(ctx, r.trialTimeout)
	defer cancel()

	opts := r.base
	opts.ParallelThreshold = threshold
	start := time.Now()
	_, err := r.m.Multiply(trialCtx, r.a, r.b, opts)
	return calibrationResult{Threshold: threshold, Duration: time.Since(start), Err: err}
}

// best returns the fastest successful threshold, or ok=false when every
// trial failed.
func best(results []calibrationResult) (threshold int, duration time.Duration, ok bool) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if !ok || res.Duration < duration {
			threshold, duration, ok = res.Threshold, res.Duration, true
		}
	}
	return threshold, duration, ok
}
