package multiply

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/agbru/fftmul/internal/codec"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/spectral"
)

var (
	// ErrOperandTooLarge is returned when the combined operand length exceeds
	// the configured limit and unsafe sizes are not allowed.
	ErrOperandTooLarge = errors.New("operands exceed the safe length")
	// ErrInvalidLength is returned by MultiplyPadded for a transform length
	// that cannot hold the product.
	ErrInvalidLength = errors.New("invalid transform length")
)

// Multiply returns the decimal product of the non-negative integers a and b.
// The transform length is the next power of two of len(a)+len(b).
//
// Parameters:
//   - a, b: Non-empty strings of ASCII digits. Leading zeros are accepted.
//
// Returns:
//   - string: The product without leading zeros ("0" for a zero product).
//   - error: An apperrors.ValidationError wrapping codec.ErrInvalidInput if
//     an operand is not a digit string.
func Multiply(a, b string) (string, error) {
	if err := validateOperands(a, b); err != nil {
		return "", err
	}
	return MultiplyWith(spectral.Default(), a, b, spectral.NextPowerOfTwo(len(a)+len(b)))
}

// MultiplyPadded is Multiply with a caller-chosen transform length n. Any
// power of two n >= len(a)+len(b)-1 yields the same product.
func MultiplyPadded(a, b string, n int) (string, error) {
	if err := validateOperands(a, b); err != nil {
		return "", err
	}
	if !spectral.IsPowerOfTwo(n) {
		return "", fmt.Errorf("%w: %d is not a power of two", ErrInvalidLength, n)
	}
	if need := len(a) + len(b) - 1; n < need {
		return "", fmt.Errorf("%w: %d is shorter than the product length %d", ErrInvalidLength, n, need)
	}
	return MultiplyWith(spectral.Default(), a, b, n)
}

// MultiplyWith runs the encode, convolve, decode pipeline with transformer t
// at length n. Operands must already be valid; n must be a power of two no
// smaller than len(a)+len(b)-1. A nil t selects the default strategy.
func MultiplyWith(t spectral.Transformer, a, b string, n int) (string, error) {
	ea, err := codec.EncodePadded(a, n)
	if err != nil {
		return "", err
	}

	var c []complex128
	if a == b {
		c = spectral.Square(t, ea)
	} else {
		eb, err := codec.EncodePadded(b, n)
		if err != nil {
			return "", err
		}
		c = spectral.Convolve(t, ea, eb)
	}

	product, stats := codec.DecodeWithStats(c)
	name := spectral.StrategyIterative
	if t != nil {
		name = t.Name()
	}
	if err := checkPrecision("fft-"+name, stats, false); err != nil {
		return "", err
	}
	return product, nil
}

func validateOperands(a, b string) error {
	if err := codec.Validate(a); err != nil {
		return apperrors.WrapValidationError("a", err)
	}
	if err := codec.Validate(b); err != nil {
		return apperrors.WrapValidationError("b", err)
	}
	return nil
}

// checkPrecision logs decodes whose rounding deviation exceeds
// PrecisionWarnThreshold. With strict set, it also returns a PrecisionError.
func checkPrecision(algo string, stats codec.Stats, strict bool) error {
	if stats.MaxRoundingError <= PrecisionWarnThreshold {
		return nil
	}
	log.Warn().
		Str("algo", algo).
		Int("position", stats.MaxErrorPosition).
		Float64("deviation", stats.MaxRoundingError).
		Msg("rounding deviation above threshold, product digits may be wrong")
	if strict {
		return apperrors.PrecisionError{
			Position:  stats.MaxErrorPosition,
			Deviation: stats.MaxRoundingError,
			Tolerance: PrecisionWarnThreshold,
		}
	}
	return nil
}
