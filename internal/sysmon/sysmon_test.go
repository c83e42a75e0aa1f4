package sysmon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	assert.GreaterOrEqual(t, s.CPUPercent, 0.0)
	assert.LessOrEqual(t, s.CPUPercent, 100.0)
	assert.GreaterOrEqual(t, s.MemPercent, 0.0)
	assert.LessOrEqual(t, s.MemPercent, 100.0)
}

func TestSampleContext_MemoryFields(t *testing.T) {
	s := SampleContext(context.Background())
	if s.MemTotal == 0 {
		t.Skip("memory statistics unavailable on this host")
	}
	assert.LessOrEqual(t, s.MemAvailable, s.MemTotal)
	assert.Greater(t, s.MemPercent, 0.0)
}

func TestStats_Fits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		stats Stats
		need  uint64
		want  bool
	}{
		{"unknown", Stats{}, 1 << 40, true},
		{"fits", Stats{MemAvailable: 1 << 30}, 1 << 20, true},
		{"exact", Stats{MemAvailable: 1 << 20}, 1 << 20, true},
		{"too large", Stats{MemAvailable: 1 << 20}, 1 << 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.stats.Fits(tt.need))
		})
	}
}

func TestClampPercent(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, clampPercent(-3))
	assert.Equal(t, 100.0, clampPercent(140))
	assert.Equal(t, 42.5, clampPercent(42.5))
}
