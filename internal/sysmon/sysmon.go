// Package sysmon samples system-wide CPU and memory usage for the dashboard
// and for the headroom check that precedes large multiplications.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	// MemAvailable is the memory available to new allocations, in bytes.
	MemAvailable uint64
	// MemTotal is the physical memory size, in bytes.
	MemTotal uint64
}

// Sample collects a snapshot with a background context.
func Sample() Stats {
	return SampleContext(context.Background())
}

// SampleContext collects a snapshot. CPU usage is the delta since the
// previous call. Fields that cannot be read are left at zero.
func SampleContext(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = clampPercent(pcts[0])
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		s.MemPercent = clampPercent(vm.UsedPercent)
		s.MemAvailable = vm.Available
		s.MemTotal = vm.Total
	}
	return s
}

// Fits reports whether need bytes fit in the available memory. It returns
// true when the available memory is unknown.
func (s Stats) Fits(need uint64) bool {
	return s.MemAvailable == 0 || need <= s.MemAvailable
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}
