// Pool pre-warming based on the expected operand size.

package spectral

import "sync/atomic"

// ─────────────────────────────────────────────────────────────────────────────
// Pool Pre-warming
// ─────────────────────────────────────────────────────────────────────────────

// BuffersFor returns how many buffers PreWarmPools places in the size class
// for a transform of n points: larger transforms keep more buffers ready.
func BuffersFor(n int) int {
	switch {
	case n >= 1<<20:
		return 6
	case n >= 1<<16:
		return 4
	default:
		return 2
	}
}

// PreWarmPools pre-allocates scratch buffers for multiplying operands with up
// to maxDigits digits each, and builds the matching twiddle table.
func PreWarmPools(maxDigits int) {
	n := NextPowerOfTwo(2 * maxDigits)
	idx := getComplexSlicePoolIndex(n)
	if idx >= 0 {
		for i := 0; i < BuffersFor(n); i++ {
			complexSlicePools[idx].Put(make([]complex128, complexSliceSizes[idx]))
		}
	}
	if n > 1 {
		twiddles(n)
	}
}

// poolsWarmed tracks whether pools have been pre-warmed.
var poolsWarmed atomic.Bool

// EnsurePoolsWarmed pre-warms the pools exactly once. It is safe to call
// concurrently; only the first call does any work.
func EnsurePoolsWarmed(maxDigits int) {
	if poolsWarmed.CompareAndSwap(false, true) {
		PreWarmPools(maxDigits)
	}
}
