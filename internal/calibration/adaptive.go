package calibration

import (
	"runtime"

	"github.com/agbru/fftmul/internal/config"
)

// Sequential is the threshold candidate that disables parallel butterflies.
const Sequential = -1

// ─────────────────────────────────────────────────────────────────────────────
// Adaptive Parallel Threshold Generation
// ─────────────────────────────────────────────────────────────────────────────

// GenerateParallelThresholds returns the transform lengths to benchmark on
// this machine. The sequential run is always included; more cores add lower
// candidates since smaller sub-problems can then be spread profitably.
func GenerateParallelThresholds() []int {
	return parallelThresholdsFor(runtime.NumCPU())
}

func parallelThresholdsFor(numCPU int) []int {
	thresholds := []int{Sequential}
	switch {
	case numCPU <= 1:
		return thresholds
	case numCPU <= 4:
		thresholds = append(thresholds, 1<<14, 1<<15, 1<<16, 1<<17)
	case numCPU <= 8:
		thresholds = append(thresholds, 1<<12, 1<<13, 1<<14, 1<<15, 1<<16, 1<<17)
	default:
		thresholds = append(thresholds, 1<<10, 1<<11, 1<<12, 1<<13, 1<<14, 1<<15, 1<<16, 1<<17)
	}
	return thresholds
}

// GenerateQuickParallelThresholds returns a reduced candidate set.
func GenerateQuickParallelThresholds() []int {
	if runtime.NumCPU() == 1 {
		return []int{Sequential}
	}
	return []int{Sequential, 1 << 13, 1 << 14, 1 << 15}
}

// EstimateOptimalParallelThreshold delegates to config.EstimateOptimalParallelThreshold.
func EstimateOptimalParallelThreshold() int { return config.EstimateOptimalParallelThreshold() }
