package spectral

import (
	"math/cmplx"

	"golang.org/x/sync/errgroup"
)

// Iterative is the bottom-up strategy: a bit-reversal permutation followed by
// log2(n) butterfly passes over one flat buffer. Pass p combines the pairs
// (i+j, i+j+p) of every block of size 2p with the twiddle w_{2p}^j.
//
// The inverse uses the conjugated twiddles directly and divides by n once
// after the last pass.
type Iterative struct {
	opts Options
}

// NewIterative creates an iterative strategy. When opts enables parallelism,
// the independent butterflies of one pass are split across goroutines; the
// passes themselves always run in order.
func NewIterative(opts Options) *Iterative {
	return &Iterative{opts: opts}
}

// Name returns the strategy name.
func (it *Iterative) Name() string { return StrategyIterative }

// Forward returns the forward transform of v.
func (it *Iterative) Forward(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	it.transformInto(out, v, false)
	return out
}

// Inverse returns the inverse transform of v.
func (it *Iterative) Inverse(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	it.transformInto(out, v, true)
	return out
}

func (it *Iterative) transformInto(dst, src []complex128, inverse bool) {
	n := len(src)
	mustPowerOfTwo(n)
	if len(dst) != n {
		panic("spectral: destination length differs from source")
	}
	bitReverseCopy(dst, src)
	if n == 1 {
		return
	}

	tw := twiddles(n)
	parallelPasses := it.opts.parallelFor(n)
	for p := 1; p < n; p <<= 1 {
		if parallelPasses {
			it.passParallel(dst, p, tw, inverse)
		} else {
			butterflies(dst, p, tw, inverse, 0, n/2)
		}
	}
	if inverse {
		scale(dst, 1/float64(n))
	}
}

// butterflies performs the pass-p butterflies numbered [from, to). Butterfly
// t lives in block t/p at offset j = t%p.
func butterflies(y []complex128, p int, tw []complex128, inverse bool, from, to int) {
	twStride := len(y) / (2 * p)
	for t := from; t < to; t++ {
		j := t % p
		i := (t/p)*2*p + j
		w := tw[j*twStride]
		if inverse {
			w = cmplx.Conj(w)
		}
		e := y[i]
		o := w * y[i+p]
		y[i] = e + o
		y[i+p] = e - o
	}
}

// passParallel splits the n/2 butterflies of one pass into contiguous chunks.
// Chunks touch disjoint index pairs, so they need no synchronization beyond
// the final Wait.
func (it *Iterative) passParallel(y []complex128, p int, tw []complex128, inverse bool) {
	total := len(y) / 2
	workers := it.opts.workers()
	chunk := (total + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for from := 0; from < total; from += chunk {
		to := min(from+chunk, total)
		g.Go(func() error {
			butterflies(y, p, tw, inverse, from, to)
			return nil
		})
	}
	_ = g.Wait()
}
