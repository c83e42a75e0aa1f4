package spectral

import (
	"errors"
	"fmt"
	"math/cmplx"
	"runtime"
	"sort"
)

// Strategy names accepted by NewTransformer.
const (
	StrategyRecursive = "recursive"
	StrategyIterative = "iterative"
)

// DefaultParallelThreshold is the sub-problem length from which the
// strategies split work across goroutines. Below it the goroutine overhead
// outweighs the butterfly work.
const DefaultParallelThreshold = 1 << 14

var (
	// ErrNotPowerOfTwo is returned when a sequence length is not a power of two.
	ErrNotPowerOfTwo = errors.New("sequence length is not a power of two")
	// ErrLengthMismatch is returned when two operands of a convolution differ in length.
	ErrLengthMismatch = errors.New("sequence lengths differ")
	// ErrUnknownStrategy is returned by NewTransformer for an unregistered name.
	ErrUnknownStrategy = errors.New("unknown transform strategy")
)

// Options tunes a transform strategy. The zero value runs sequentially.
type Options struct {
	// ParallelThreshold is the sub-problem length at or above which work is
	// split across goroutines. 0 disables parallelism.
	ParallelThreshold int
	// MaxWorkers bounds the number of goroutines. 0 selects GOMAXPROCS.
	MaxWorkers int
}

// DefaultOptions returns the options used when none are supplied.
func DefaultOptions() Options {
	return Options{ParallelThreshold: DefaultParallelThreshold}
}

func (o Options) workers() int {
	if o.MaxWorkers > 0 {
		return o.MaxWorkers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) parallelFor(n int) bool {
	return o.ParallelThreshold > 0 && n >= o.ParallelThreshold && o.workers() > 1
}

// Transformer computes the forward and inverse DFT of a power-of-two-length
// sequence. Implementations never modify their input and return a new slice.
type Transformer interface {
	// Forward returns the spectrum of v using twiddles e^{+2πi/m}.
	Forward(v []complex128) []complex128
	// Inverse returns the time-domain sequence of v, scaled by 1/len(v).
	Inverse(v []complex128) []complex128
	// Name identifies the strategy.
	Name() string
}

// intoTransformer is implemented by strategies that can write into a
// caller-provided buffer. dst and src must not overlap.
type intoTransformer interface {
	transformInto(dst, src []complex128, inverse bool)
}

var strategies = map[string]func(Options) Transformer{
	StrategyRecursive: func(o Options) Transformer { return NewRecursive(o) },
	StrategyIterative: func(o Options) Transformer { return NewIterative(o) },
}

// NewTransformer returns the strategy registered under name.
func NewTransformer(name string, opts Options) (Transformer, error) {
	ctor, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownStrategy, name, Strategies())
	}
	return ctor(opts), nil
}

// Strategies returns the registered strategy names, sorted.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the iterative strategy with default options. It is the
// strategy used by the multiplication driver: its depth does not grow the
// call stack.
func Default() Transformer {
	return NewIterative(DefaultOptions())
}

// Transform validates v and runs the forward or inverse transform with t.
// A nil t selects Default().
func Transform(v []complex128, inverse bool, t Transformer) ([]complex128, error) {
	if !IsPowerOfTwo(len(v)) {
		return nil, fmt.Errorf("%w: length %d", ErrNotPowerOfTwo, len(v))
	}
	if t == nil {
		t = Default()
	}
	if inverse {
		return t.Inverse(v), nil
	}
	return t.Forward(v), nil
}

func mustPowerOfTwo(n int) {
	if !IsPowerOfTwo(n) {
		panic(fmt.Sprintf("spectral: length %d is not a power of two", n))
	}
}

// conjugateScale conjugates every element of v and multiplies it by s.
func conjugateScale(v []complex128, s float64) {
	for i, x := range v {
		v[i] = cmplx.Conj(x) * complex(s, 0)
	}
}

// scale multiplies every element of v by s.
func scale(v []complex128, s float64) {
	c := complex(s, 0)
	for i := range v {
		v[i] *= c
	}
}
