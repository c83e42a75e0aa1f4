package spectral

import "math/bits"

// ReverseBits reverses the low numBits bits of x.
func ReverseBits(x, numBits int) int {
	if numBits <= 0 {
		return 0
	}
	return int(bits.Reverse(uint(x)) >> (bits.UintSize - numBits))
}

// BitReversePermute reorders v in place so that v[i] moves to
// v[ReverseBits(i, log2(len(v)))]. The permutation is an involution.
// len(v) must be a power of two.
func BitReversePermute(v []complex128) {
	n := len(v)
	mustPowerOfTwo(n)
	numBits := Log2(n)
	for i := 0; i < n; i++ {
		j := ReverseBits(i, numBits)
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}

// bitReverseCopy writes src into dst in bit-reversed order.
func bitReverseCopy(dst, src []complex128) {
	numBits := Log2(len(src))
	for i, x := range src {
		dst[ReverseBits(i, numBits)] = x
	}
}
