package spectral

import (
	"math"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Twiddle Factor Tables
// ─────────────────────────────────────────────────────────────────────────────

// maxCachedTwiddleLog2 bounds the table cache. Tables above 2^22 points are
// rebuilt on demand rather than kept alive.
const maxCachedTwiddleLog2 = 22

// twiddleCache holds one table per transform size, indexed by log2(n).
var twiddleCache struct {
	mu     sync.RWMutex
	tables [maxCachedTwiddleLog2 + 1][]complex128
}

// twiddles returns the n/2 forward roots of unity w^k = e^{+2πik/n}.
// Each entry is computed directly with Sincos rather than by repeated
// multiplication, so the error does not grow with k.
func twiddles(n int) []complex128 {
	lg := Log2(n)
	if lg > maxCachedTwiddleLog2 {
		return buildTwiddles(n)
	}

	twiddleCache.mu.RLock()
	t := twiddleCache.tables[lg]
	twiddleCache.mu.RUnlock()
	if t != nil {
		return t
	}

	t = buildTwiddles(n)
	twiddleCache.mu.Lock()
	if existing := twiddleCache.tables[lg]; existing != nil {
		t = existing
	} else {
		twiddleCache.tables[lg] = t
	}
	twiddleCache.mu.Unlock()
	return t
}

func buildTwiddles(n int) []complex128 {
	half := n / 2
	if half == 0 {
		half = 1
	}
	t := make([]complex128, half)
	step := 2 * math.Pi / float64(n)
	for k := range t {
		s, c := math.Sincos(step * float64(k))
		t[k] = complex(c, s)
	}
	return t
}
