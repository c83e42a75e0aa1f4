package multiply

import (
	"context"
	"fmt"
	"math/big"

	"github.com/agbru/fftmul/internal/codec"
	"github.com/agbru/fftmul/internal/progress"
)

// BigIntMultiplier multiplies with math/big. It serves as the reference the
// other algorithms are compared against.
type BigIntMultiplier struct{}

// Name returns the display name of the algorithm.
func (BigIntMultiplier) Name() string {
	return "math/big"
}

// MultiplyCore parses both operands, multiplies and formats the product.
func (BigIntMultiplier) MultiplyCore(ctx context.Context, report progress.ProgressCallback, a, b string, _ Options) (string, error) {
	x, ok := new(big.Int).SetString(a, 10)
	if !ok {
		return "", fmt.Errorf("%w: cannot parse %q", codec.ErrInvalidInput, a)
	}
	y, ok := new(big.Int).SetString(b, 10)
	if !ok {
		return "", fmt.Errorf("%w: cannot parse %q", codec.ErrInvalidInput, b)
	}
	progress.StageEncoded.Report(report)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return x.Mul(x, y).String(), nil
}
