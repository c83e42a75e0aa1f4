package multiply

// ─────────────────────────────────────────────────────────────────────────────
// Precision Limits
// ─────────────────────────────────────────────────────────────────────────────
//
// The transform accumulates products of digits up to 9*9 in float64. The
// rounding error of each coefficient grows roughly with log2(n) and with the
// magnitude of the coefficients, which is bounded by 81*min(|A|, |B|).

const (
	// MaxSafeDigits is the combined operand length (|A|+|B|) up to which
	// float64 precision reliably recovers every coefficient. Longer inputs
	// are rejected unless Options.AllowUnsafe is set.
	MaxSafeDigits = 1_000_000

	// PrecisionWarnThreshold is the rounding deviation above which a decode
	// is logged at warn level. A deviation reaching 0.5 would round to the
	// wrong integer.
	PrecisionWarnThreshold = 0.25
)

// ─────────────────────────────────────────────────────────────────────────────
// Multiplier Names
// ─────────────────────────────────────────────────────────────────────────────

const (
	// NameFFTIterative is the registry key of the iterative transform multiplier.
	NameFFTIterative = "fft-iterative"
	// NameFFTRecursive is the registry key of the recursive transform multiplier.
	NameFFTRecursive = "fft-recursive"
	// NameSchoolbook is the registry key of the quadratic digit multiplier.
	NameSchoolbook = "schoolbook"
	// NameBigInt is the registry key of the math/big multiplier.
	NameBigInt = "bigint"

	// DefaultMultiplier is used when no algorithm is selected.
	DefaultMultiplier = NameFFTIterative
)
