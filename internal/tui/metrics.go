package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fftmul/internal/format"
	"github.com/agbru/fftmul/internal/metrics"
)

// MetricsModel displays runtime memory statistics, the progress rate and
// the transform dimensions of the current multiplication.
type MetricsModel struct {
	alloc        uint64
	heapSys      uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int
	speed        float64 // progress per second
	lastProgress float64
	lastUpdate   time.Time

	transformLen int
	transformMem uint64
	threshold    int

	width  int
	height int
}

// NewMetricsModel creates a metrics panel for a digitsA × digitsB product
// computed with the given parallel threshold.
func NewMetricsModel(digitsA, digitsB, threshold int) MetricsModel {
	return MetricsModel{
		lastUpdate:   time.Now(),
		transformLen: metrics.TransformLength(digitsA, digitsB),
		transformMem: metrics.EstimateTransformMemory(digitsA, digitsB),
		threshold:    threshold,
	}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateProgress updates the exponentially smoothed progress rate. Updates
// closer than 50ms to the previous one are ignored.
func (m *MetricsModel) UpdateProgress(progress float64) {
	now := time.Now()
	dt := now.Sub(m.lastUpdate).Seconds()
	if dt <= 0.05 {
		return
	}
	if dp := progress - m.lastProgress; dp > 0 {
		instant := dp / dt
		if m.speed > 0 {
			m.speed = 0.7*m.speed + 0.3*instant
		} else {
			m.speed = instant
		}
	}
	m.lastProgress = progress
	m.lastUpdate = now
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	colWidth := max((m.width-6)/2, 0)

	threshold := "disabled"
	if m.threshold > 0 {
		threshold = format.FormatNumberString(fmt.Sprint(m.threshold))
	}
	speed := "-"
	if m.speed > 0 {
		speed = fmt.Sprintf("%.1f%%/s", m.speed*100)
	}

	left := []string{
		formatMetricCol("Heap:", format.FormatBytes(m.alloc)+" / "+format.FormatBytes(m.heapSys), colWidth),
		formatMetricCol("Transform:", format.FormatNumberString(fmt.Sprint(m.transformLen)), colWidth),
		formatMetricCol("Speed:", speed, colWidth),
	}
	right := []string{
		formatMetricCol("GC:", fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6), colWidth),
		formatMetricCol("Buffers:", format.FormatBytes(m.transformMem), colWidth),
		formatMetricCol("Parallel:", threshold, colWidth),
	}

	var rows strings.Builder
	rows.WriteString(panelTitleStyle.Render("Metrics"))
	for i := range left {
		rows.WriteString("\n")
		rows.WriteString(left[i])
		rows.WriteString(right[i])
	}
	rows.WriteString("\n")
	rows.WriteString(formatMetricCol("Goroutines:", fmt.Sprint(m.numGoroutine), colWidth))

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-11s", label)),
		metricValueStyle.Render(value))
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
