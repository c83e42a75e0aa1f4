//go:build gmp

// GMP-backed reference multiplier, compiled only with the "gmp" build tag.
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp

package multiply

import (
	"context"
	"fmt"

	"github.com/ncw/gmp"

	"github.com/agbru/fftmul/internal/codec"
	"github.com/agbru/fftmul/internal/progress"
)

// NameGMP is the registry key of the GMP multiplier.
const NameGMP = "gmp"

func init() {
	_ = RegisterMultiplier(NameGMP, func() coreMultiplier { return &GMPMultiplier{} })
}

// GMPMultiplier multiplies with libgmp through cgo.
type GMPMultiplier struct{}

// Name returns the display name of the algorithm.
func (GMPMultiplier) Name() string {
	return "GMP"
}

// MultiplyCore parses both operands into GMP integers and multiplies them.
func (GMPMultiplier) MultiplyCore(ctx context.Context, report progress.ProgressCallback, a, b string, _ Options) (string, error) {
	x, ok := new(gmp.Int).SetString(a, 10)
	if !ok {
		return "", fmt.Errorf("%w: cannot parse %q", codec.ErrInvalidInput, a)
	}
	y, ok := new(gmp.Int).SetString(b, 10)
	if !ok {
		return "", fmt.Errorf("%w: cannot parse %q", codec.ErrInvalidInput, b)
	}
	progress.StageEncoded.Report(report)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return x.Mul(x, y).String(), nil
}
