// Package metrics reads runtime memory statistics and estimates the working
// set of a transform multiplication.
package metrics

import (
	"runtime"

	"github.com/agbru/fftmul/internal/spectral"
)

// complexBytes is the size of one complex128 sample.
const complexBytes = 16

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	TotalAlloc   uint64 // cumulative bytes allocated
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		TotalAlloc:   m.TotalAlloc,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}

// Since returns the allocation and GC activity between before and mc's
// current reading. HeapAlloc is the current value, not a difference.
func (mc *MemoryCollector) Since(before MemorySnapshot) MemorySnapshot {
	now := mc.Snapshot()
	return MemorySnapshot{
		HeapAlloc:    now.HeapAlloc,
		HeapSys:      now.HeapSys,
		Sys:          now.Sys,
		TotalAlloc:   now.TotalAlloc - before.TotalAlloc,
		NumGC:        now.NumGC - before.NumGC,
		PauseTotalNs: now.PauseTotalNs - before.PauseTotalNs,
		HeapObjects:  now.HeapObjects,
	}
}

// TransformLength returns the padded transform length used for operands of
// digitsA and digitsB digits.
func TransformLength(digitsA, digitsB int) int {
	return spectral.NextPowerOfTwo(digitsA + digitsB)
}

// EstimateTransformMemory returns the bytes held during one transform
// multiplication: two sample buffers of the padded length and the twiddle
// table of half that length.
func EstimateTransformMemory(digitsA, digitsB int) uint64 {
	n := uint64(TransformLength(digitsA, digitsB))
	return 2*n*complexBytes + n/2*complexBytes
}
