package multiply

//go:generate mockgen -source=calculator.go -destination=mocks/mock_multiplier.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/fftmul/internal/codec"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/progress"
	"github.com/agbru/fftmul/internal/spectral"
)

var (
	multiplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fftmul_multiplications_total",
			Help: "The total number of multiplications processed",
		},
		[]string{"algorithm", "status"},
	)
	multiplicationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fftmul_multiplication_duration_seconds",
			Help: "The duration of multiplications in seconds",
		},
		[]string{"algorithm"},
	)
	operandDigits = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fftmul_operand_digits",
			Help:    "Combined digit count of multiplied operands",
			Buckets: prometheus.ExponentialBuckets(8, 4, 10),
		},
	)
)

// Multiplier is the interface the rest of the application uses to multiply
// two decimal digit strings.
type Multiplier interface {
	// Multiply returns the product of a and b. It is safe for concurrent use
	// and honours cancellation of ctx.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - a, b: The operands as strings of decimal digits.
	//   - opts: Configuration options for the multiplication.
	//
	// Returns:
	//   - string: The product without leading zeros.
	//   - error: An error if the operands are invalid, too large, or the
	//     context ended.
	Multiply(ctx context.Context, a, b string, opts Options) (string, error)

	// MultiplyWithObservers is Multiply with progress reported to the
	// observers registered on subject under calcIndex. A nil subject
	// discards progress.
	MultiplyWithObservers(ctx context.Context, subject *progress.ProgressSubject, calcIndex int, a, b string, opts Options) (string, error)

	// Name returns the display name of the algorithm.
	Name() string
}

// coreMultiplier is a bare multiplication algorithm. Operands reaching it
// have been validated and size-checked.
type coreMultiplier interface {
	MultiplyCore(ctx context.Context, report progress.ProgressCallback, a, b string, opts Options) (string, error)
	Name() string
}

// ProductCalculator decorates a coreMultiplier with validation, size limits,
// progress reporting, metrics and tracing.
type ProductCalculator struct {
	core coreMultiplier
}

// NewMultiplier wraps core into a Multiplier. It panics if core is nil.
func NewMultiplier(core coreMultiplier) Multiplier {
	if core == nil {
		panic("multiply: the `coreMultiplier` implementation cannot be nil")
	}
	return &ProductCalculator{core: core}
}

// Name returns the name of the wrapped algorithm.
func (c *ProductCalculator) Name() string {
	return c.core.Name()
}

// Multiply implements Multiplier without progress reporting.
func (c *ProductCalculator) Multiply(ctx context.Context, a, b string, opts Options) (string, error) {
	return c.MultiplyWithObservers(ctx, nil, 0, a, b, opts)
}

// MultiplyWithObservers validates the operands, enforces the size limit and
// delegates to the wrapped algorithm. Completion is always reported as 1.0
// on success.
func (c *ProductCalculator) MultiplyWithObservers(ctx context.Context, subject *progress.ProgressSubject, calcIndex int, a, b string, opts Options) (result string, err error) {
	algoName := c.core.Name()

	tracer := otel.Tracer("multiply")
	ctx, span := tracer.Start(ctx, "Multiply")
	span.SetAttributes(
		attribute.String("algorithm", algoName),
		attribute.Int("digits.a", len(a)),
		attribute.Int("digits.b", len(b)),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		multiplicationsTotal.WithLabelValues(algoName, status).Inc()
		multiplicationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Int("digits", len(a)+len(b)).
			Float64("duration", duration).
			Str("status", status).
			Msg("multiplication completed")
	}()

	opts = normalizeOptions(opts)
	if err := codec.Validate(a); err != nil {
		return "", apperrors.WrapValidationError("a", err)
	}
	if err := codec.Validate(b); err != nil {
		return "", apperrors.WrapValidationError("b", err)
	}
	total := len(a) + len(b)
	if !opts.AllowUnsafe && total > opts.MaxDigits {
		return "", fmt.Errorf("%w: %d combined digits, limit is %d", ErrOperandTooLarge, total, opts.MaxDigits)
	}
	operandDigits.Observe(float64(total))

	if err := ctx.Err(); err != nil {
		return "", err
	}

	var report progress.ProgressCallback
	if subject != nil {
		report = subject.Freeze(calcIndex)
	} else {
		report = func(float64) {}
	}

	spectral.EnsurePoolsWarmed(max(len(a), len(b)))

	result, err = c.core.MultiplyCore(ctx, report, a, b, opts)
	if err == nil {
		report(1.0)
	}
	return result, err
}
