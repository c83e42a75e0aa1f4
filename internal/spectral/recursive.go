package spectral

import (
	"math/cmplx"

	"github.com/agbru/fftmul/internal/parallel"
)

// Recursive is the divide-and-conquer strategy. Each level transforms the
// even- and odd-indexed subsequences and combines them with one butterfly
// pass. The subsequences are addressed through an (offset, stride) pair over
// the original input instead of being copied.
//
// The inverse runs the forward transform on the conjugated input, conjugates
// the result and divides by n.
type Recursive struct {
	opts    Options
	limiter *parallel.Limiter
}

// NewRecursive creates a recursive strategy. When opts enables parallelism,
// the two halves of large sub-problems are transformed concurrently.
func NewRecursive(opts Options) *Recursive {
	r := &Recursive{opts: opts}
	if opts.ParallelThreshold > 0 {
		r.limiter = parallel.NewLimiter(opts.workers() - 1)
	}
	return r
}

// Name returns the strategy name.
func (r *Recursive) Name() string { return StrategyRecursive }

// Forward returns the forward transform of v.
func (r *Recursive) Forward(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	r.transformInto(out, v, false)
	return out
}

// Inverse returns the inverse transform of v.
func (r *Recursive) Inverse(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	r.transformInto(out, v, true)
	return out
}

func (r *Recursive) transformInto(dst, src []complex128, inverse bool) {
	n := len(src)
	mustPowerOfTwo(n)
	if len(dst) != n {
		panic("spectral: destination length differs from source")
	}
	if n == 1 {
		dst[0] = src[0]
		return
	}

	tw := twiddles(n)
	if !inverse {
		r.fft(dst, src, 0, 1, tw, 1)
		return
	}

	conj := acquireComplexSliceUnsafe(n)
	defer releaseComplexSlice(conj)
	for i, x := range src {
		conj[i] = cmplx.Conj(x)
	}
	r.fft(dst, conj, 0, 1, tw, 1)
	conjugateScale(dst, 1/float64(n))
}

// fft writes into dst the transform of the len(dst) elements
// src[off], src[off+stride], src[off+2·stride], ...
// tw is the twiddle table of the top-level size; the twiddle for index k
// at this level is tw[k·twStride].
func (r *Recursive) fft(dst, src []complex128, off, stride int, tw []complex128, twStride int) {
	n := len(dst)
	if n == 1 {
		dst[0] = src[off]
		return
	}

	half := n / 2
	even, odd := dst[:half], dst[half:]
	evenFn := func() { r.fft(even, src, off, 2*stride, tw, 2*twStride) }
	oddFn := func() { r.fft(odd, src, off+stride, 2*stride, tw, 2*twStride) }
	if r.opts.parallelFor(n) {
		parallel.ForkJoin(r.limiter, evenFn, oddFn)
	} else {
		evenFn()
		oddFn()
	}

	for k := 0; k < half; k++ {
		e := even[k]
		o := tw[k*twStride] * odd[k]
		even[k] = e + o
		odd[k] = e - o
	}
}
