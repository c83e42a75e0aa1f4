package spectral

import "math/bits"

// NextPowerOfTwo returns the smallest power of two greater than or equal to n.
// For n <= 1 it returns 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns log2(n) for a power of two n.
func Log2(n int) int {
	return bits.Len(uint(n)) - 1
}
