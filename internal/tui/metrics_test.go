package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/agbru/fftmul/internal/metrics"
)

func TestMetricsModel_UpdateMemStats(t *testing.T) {
	m := NewMetricsModel(10, 10, 0)

	msg := MemStatsMsg{
		Alloc:        50 << 20,
		HeapSys:      80 << 20,
		NumGC:        10,
		PauseTotalNs: 2_500_000,
		NumGoroutine: 8,
	}
	m.UpdateMemStats(msg)

	if m.alloc != msg.Alloc || m.heapSys != msg.HeapSys {
		t.Errorf("heap = %d/%d, want %d/%d", m.alloc, m.heapSys, msg.Alloc, msg.HeapSys)
	}
	if m.numGC != msg.NumGC {
		t.Errorf("numGC = %d, want %d", m.numGC, msg.NumGC)
	}
	if m.numGoroutine != msg.NumGoroutine {
		t.Errorf("numGoroutine = %d, want %d", m.numGoroutine, msg.NumGoroutine)
	}
}

func TestMetricsModel_TransformDimensions(t *testing.T) {
	m := NewMetricsModel(1000, 2000, 4096)

	if want := metrics.TransformLength(1000, 2000); m.transformLen != want {
		t.Errorf("transformLen = %d, want %d", m.transformLen, want)
	}
	if want := metrics.EstimateTransformMemory(1000, 2000); m.transformMem != want {
		t.Errorf("transformMem = %d, want %d", m.transformMem, want)
	}
}

func TestMetricsModel_UpdateProgress(t *testing.T) {
	m := NewMetricsModel(10, 10, 0)
	m.lastUpdate = time.Now().Add(-time.Second)

	m.UpdateProgress(0.5)
	if m.speed <= 0 {
		t.Fatalf("expected positive speed, got %f", m.speed)
	}
	first := m.speed

	m.lastUpdate = time.Now().Add(-time.Second)
	m.UpdateProgress(0.6)
	if m.speed >= first {
		t.Errorf("expected smoothed speed below %f, got %f", first, m.speed)
	}
}

func TestMetricsModel_UpdateProgress_IgnoresBursts(t *testing.T) {
	m := NewMetricsModel(10, 10, 0)
	m.UpdateProgress(0.5)
	if m.speed != 0 {
		t.Errorf("expected update within 50ms to be ignored, got speed %f", m.speed)
	}
}

func TestMetricsModel_View(t *testing.T) {
	m := NewMetricsModel(1000, 1000, -1)
	m.SetSize(80, 8)
	m.UpdateMemStats(MemStatsMsg{Alloc: 1 << 20, HeapSys: 2 << 20, NumGoroutine: 4})

	view := m.View()
	for _, want := range []string{"Metrics", "Heap:", "Transform:", "Buffers:", "Parallel:", "disabled", "Goroutines:"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestMetricsModel_View_Threshold(t *testing.T) {
	m := NewMetricsModel(1000, 1000, 16384)
	m.SetSize(80, 8)
	if view := m.View(); !strings.Contains(view, "16,384") {
		t.Error("expected formatted threshold in view")
	}
}
