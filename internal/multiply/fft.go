package multiply

import (
	"context"

	"github.com/agbru/fftmul/internal/codec"
	"github.com/agbru/fftmul/internal/parallel"
	"github.com/agbru/fftmul/internal/progress"
	"github.com/agbru/fftmul/internal/spectral"
)

// FFTMultiplier multiplies through the spectral transform using one of its
// strategies.
type FFTMultiplier struct {
	strategy string
}

// NewFFTMultiplier returns the core multiplier for the given spectral strategy.
func NewFFTMultiplier(strategy string) *FFTMultiplier {
	return &FFTMultiplier{strategy: strategy}
}

// Name returns the display name of the algorithm.
func (m *FFTMultiplier) Name() string {
	return "FFT (" + m.strategy + ")"
}

// MultiplyCore runs encode, forward transforms, pointwise product, inverse
// transform and decode, checking ctx between stages. Above the parallel
// threshold the two operands are encoded and transformed concurrently.
func (m *FFTMultiplier) MultiplyCore(ctx context.Context, report progress.ProgressCallback, a, b string, opts Options) (string, error) {
	t, err := spectral.NewTransformer(m.strategy, opts.spectralOptions())
	if err != nil {
		return "", err
	}
	n := spectral.NextPowerOfTwo(len(a) + len(b))

	var fa, fb []complex128
	encodeForward := func(s string, dst *[]complex128) func() error {
		return func() error {
			e, err := codec.EncodePadded(s, n)
			if err != nil {
				return err
			}
			*dst = t.Forward(e)
			return nil
		}
	}
	switch {
	case a == b:
		err = encodeForward(a, &fa)()
		fb = fa
	case opts.concurrentOperands(n):
		err = parallel.Run(encodeForward(a, &fa), encodeForward(b, &fb))
	default:
		if err = encodeForward(a, &fa)(); err == nil {
			err = encodeForward(b, &fb)()
		}
	}
	if err != nil {
		return "", err
	}
	progress.StageEncoded.Report(report)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	progress.StageForward.Report(report)

	for i := range fa {
		fa[i] *= fb[i]
	}
	progress.StagePointwise.Report(report)

	c := t.Inverse(fa)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	progress.StageInverse.Report(report)

	result, stats := codec.DecodeWithStats(c)
	if err := checkPrecision(m.Name(), stats, opts.StrictPrecision); err != nil {
		return "", err
	}
	progress.StageDecoded.Report(report)
	return result, nil
}
