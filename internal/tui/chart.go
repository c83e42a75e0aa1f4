package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/fftmul/internal/format"
)

// ChartModel shows the average progress with its ETA and sparklines of
// system CPU and memory usage.
type ChartModel struct {
	average float64
	eta     time.Duration
	elapsed time.Duration
	done    bool
	cpu     *RingBuffer
	mem     *RingBuffer
	width   int
	height  int
}

// NewChartModel creates an empty chart.
func NewChartModel() ChartModel {
	return ChartModel{cpu: NewRingBuffer(60), mem: NewRingBuffer(60)}
}

// SetSize updates dimensions and resizes the sample history to the
// sparkline width.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	if n := c.sparklineWidth(); n > 0 {
		c.cpu.Resize(n)
		c.mem.Resize(n)
	}
}

func (c ChartModel) sparklineWidth() int {
	return c.width - 16
}

// AddDataPoint records the latest average progress and ETA.
func (c *ChartModel) AddDataPoint(average float64, eta time.Duration) {
	c.average = average
	c.eta = eta
}

// UpdateSysStats appends one CPU and memory sample.
func (c *ChartModel) UpdateSysStats(cpuPercent, memPercent float64) {
	c.cpu.Push(cpuPercent)
	c.mem.Push(memPercent)
}

// SetDone freezes the chart at 100% with the total elapsed time.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.average = 1
	c.elapsed = elapsed
}

// Reset clears progress and samples.
func (c *ChartModel) Reset() {
	c.average, c.eta, c.elapsed, c.done = 0, 0, 0, false
	c.cpu.Reset()
	c.mem.Reset()
}

// View renders the chart panel. Sparklines are hidden when the panel is too
// short to hold them.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Progress"))
	b.WriteString("\n ")

	barWidth := max(c.width-24, 5)
	b.WriteString(renderBar(c.average, barWidth))
	b.WriteString(metricValueStyle.Render(fmt.Sprintf(" %5.1f%%", c.average*100)))
	b.WriteString("\n ")
	if c.done {
		b.WriteString(metricLabelStyle.Render("Total: "))
		b.WriteString(metricValueStyle.Render(format.FormatExecutionDuration(c.elapsed)))
	} else {
		b.WriteString(metricLabelStyle.Render("ETA: "))
		b.WriteString(metricValueStyle.Render(format.FormatETA(c.eta)))
	}

	if c.height >= 7 {
		b.WriteString("\n\n ")
		b.WriteString(metricLabelStyle.Render(fmt.Sprintf("CPU %5.1f%% ", c.cpu.Last())))
		b.WriteString(cpuSparklineStyle.Render(RenderSparkline(c.cpu.Slice())))
		b.WriteString("\n ")
		b.WriteString(metricLabelStyle.Render(fmt.Sprintf("MEM %5.1f%% ", c.mem.Last())))
		b.WriteString(memSparklineStyle.Render(RenderSparkline(c.mem.Slice())))
	}

	return panelStyle.Width(max(c.width-2, 0)).Height(max(c.height-2, 0)).Render(b.String())
}
