package spectral

import (
	"strings"
	"sync"

	"golang.org/x/sys/cpu"
)

// ─────────────────────────────────────────────────────────────────────────────
// CPU Feature Detection
// ─────────────────────────────────────────────────────────────────────────────

// CPUFeatures holds the floating-point vector features of the host that are
// relevant to complex128 butterflies. They are reported alongside timings.
type CPUFeatures struct {
	AVX2   bool
	AVX512 bool
	FMA    bool
	ASIMD  bool
}

var (
	cpuFeatures     CPUFeatures
	cpuFeaturesOnce sync.Once
)

// DetectCPUFeatures returns the detected features. Detection runs once.
func DetectCPUFeatures() CPUFeatures {
	cpuFeaturesOnce.Do(func() {
		cpuFeatures = CPUFeatures{
			AVX2:   cpu.X86.HasAVX2,
			AVX512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ,
			FMA:    cpu.X86.HasFMA,
			ASIMD:  cpu.ARM64.HasASIMD,
		}
	})
	return cpuFeatures
}

// String returns a human-readable summary of CPU features.
func (f CPUFeatures) String() string {
	var features []string
	if f.AVX512 {
		features = append(features, "AVX-512")
	}
	if f.AVX2 {
		features = append(features, "AVX2")
	}
	if f.FMA {
		features = append(features, "FMA")
	}
	if f.ASIMD {
		features = append(features, "ASIMD")
	}
	if len(features) == 0 {
		return "No SIMD features detected"
	}
	return "CPU Features: " + strings.Join(features, ", ")
}
