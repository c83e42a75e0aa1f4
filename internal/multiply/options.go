package multiply

import "github.com/agbru/fftmul/internal/spectral"

// Options configures a multiplication.
type Options struct {
	// ParallelThreshold is the transform length from which butterflies are
	// spread across goroutines. If 0, spectral.DefaultParallelThreshold is used.
	// A negative value disables parallelism.
	ParallelThreshold int
	// MaxWorkers bounds the goroutines used by one transform. 0 selects GOMAXPROCS.
	MaxWorkers int
	// MaxDigits overrides MaxSafeDigits when positive.
	MaxDigits int
	// AllowUnsafe lifts the combined operand length limit.
	AllowUnsafe bool
	// StrictPrecision turns a rounding deviation above PrecisionWarnThreshold
	// into an error instead of a warning.
	StrictPrecision bool
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.ParallelThreshold == 0 {
		normalized.ParallelThreshold = spectral.DefaultParallelThreshold
	}
	if normalized.MaxDigits <= 0 {
		normalized.MaxDigits = MaxSafeDigits
	}
	return normalized
}

// spectralOptions maps the multiplication options onto transform options.
func (o Options) spectralOptions() spectral.Options {
	threshold := o.ParallelThreshold
	if threshold < 0 {
		threshold = 0
	}
	return spectral.Options{ParallelThreshold: threshold, MaxWorkers: o.MaxWorkers}
}

// concurrentOperands reports whether the two operands of a length-n product
// are transformed on separate goroutines.
func (o Options) concurrentOperands(n int) bool {
	return o.ParallelThreshold > 0 && n >= o.ParallelThreshold
}
