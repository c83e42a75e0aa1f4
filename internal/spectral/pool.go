// This file provides memory pooling for transform scratch buffers to reduce GC pressure.

package spectral

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Complex Slice Pools
// ─────────────────────────────────────────────────────────────────────────────

// complexSlicePools pools []complex128 slices by size class.
// Size classes are powers of 4 from 64 to 4M points (64 MiB at 16 bytes per point).
var complexSlicePools = [...]sync.Pool{
	{New: func() any { return make([]complex128, 64) }},
	{New: func() any { return make([]complex128, 256) }},
	{New: func() any { return make([]complex128, 1024) }},
	{New: func() any { return make([]complex128, 4096) }},
	{New: func() any { return make([]complex128, 16384) }},
	{New: func() any { return make([]complex128, 65536) }},
	{New: func() any { return make([]complex128, 262144) }},
	{New: func() any { return make([]complex128, 1048576) }},
	{New: func() any { return make([]complex128, 4194304) }},
}

// complexSliceSizes defines the size classes for complex slice pools.
var complexSliceSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304}

// getComplexSlicePoolIndex returns the pool index for a given size, or -1 if
// the size is too large for pooling.
//
// complexSliceSizes are powers of 4 starting from 4^3 = 64: index i holds
// 4^(i+3) points, so bits.Len(size-1) maps directly to the index.
func getComplexSlicePoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > complexSliceSizes[len(complexSliceSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// getComplexSlicePoolIndexLinear is the linear-search reference for
// getComplexSlicePoolIndex, used by the tests.
func getComplexSlicePoolIndexLinear(size int) int {
	for i, s := range complexSliceSizes {
		if size <= s {
			return i
		}
	}
	return -1
}

// acquireComplexSlice gets a zeroed slice of exactly size points. Oversized
// requests are allocated directly.
//
//	buf := acquireComplexSlice(n)
//	defer releaseComplexSlice(buf)
func acquireComplexSlice(size int) []complex128 {
	s := acquireComplexSliceUnsafe(size)
	clear(s)
	return s
}

// acquireComplexSliceUnsafe returns a slice without clearing it. Use it only
// when every element is overwritten before being read.
func acquireComplexSliceUnsafe(size int) []complex128 {
	idx := getComplexSlicePoolIndex(size)
	if idx < 0 {
		return make([]complex128, size)
	}
	s := complexSlicePools[idx].Get().([]complex128)
	return s[:size]
}

// releaseComplexSlice returns a slice obtained from acquireComplexSlice.
// Slices whose capacity is not a size class are left to the GC. Safe with nil.
func releaseComplexSlice(s []complex128) {
	if s == nil {
		return
	}
	c := cap(s)
	idx := getComplexSlicePoolIndex(c)
	if idx >= 0 && complexSliceSizes[idx] == c {
		complexSlicePools[idx].Put(s[:c])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Convolution State Pool
// ─────────────────────────────────────────────────────────────────────────────

// convState holds the two frequency-domain buffers of one convolution.
type convState struct {
	fa []complex128
	fb []complex128
	n  int
}

var convStatePool = sync.Pool{
	New: func() any { return &convState{} },
}

// acquireConvState returns a state whose buffers hold n points each. The
// buffers are not cleared: the forward transforms overwrite them entirely.
func acquireConvState(n int) *convState {
	st := convStatePool.Get().(*convState)
	if cap(st.fa) < n {
		releaseComplexSlice(st.fa)
		st.fa = acquireComplexSliceUnsafe(n)
	} else {
		st.fa = st.fa[:n]
	}
	if cap(st.fb) < n {
		releaseComplexSlice(st.fb)
		st.fb = acquireComplexSliceUnsafe(n)
	} else {
		st.fb = st.fb[:n]
	}
	st.n = n
	return st
}

// releaseConvState returns st to the pool, keeping its buffers for reuse.
func releaseConvState(st *convState) {
	if st == nil {
		return
	}
	convStatePool.Put(st)
}
