package config

import "runtime"

// Threshold resolution chain (highest priority first):
//   1. CLI flag (-threshold)
//   2. Environment variable (FFTMUL_THRESHOLD)
//   3. Cached calibration profile (~/.fftmul_calibration.json)
//   4. Adaptive hardware estimation (this file)

// ApplyAdaptiveThresholds fills a zero (auto) threshold with the hardware
// estimate. Explicit values, including -1, are preserved.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.Threshold == 0 {
		cfg.Threshold = EstimateOptimalParallelThreshold()
	}
	return cfg
}

// EstimateOptimalParallelThreshold estimates the transform length from which
// parallel butterfly passes pay off, without running benchmarks. It returns
// -1 on a single core.
func EstimateOptimalParallelThreshold() int {
	return estimateParallelThreshold(runtime.NumCPU())
}

func estimateParallelThreshold(numCPU int) int {
	switch {
	case numCPU <= 1:
		return -1
	case numCPU <= 2:
		return 1 << 16
	case numCPU <= 4:
		return 1 << 15
	case numCPU <= 8:
		return 1 << 14
	case numCPU <= 16:
		return 1 << 13
	default:
		return 1 << 12
	}
}
