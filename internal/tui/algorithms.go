package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/fftmul/internal/format"
	"github.com/agbru/fftmul/internal/orchestration"
)

// productEdges is the number of leading and trailing digits shown for a
// truncated product.
const productEdges = 12

// algoRow is the live state of one multiplier.
type algoRow struct {
	name     string
	progress float64
	duration time.Duration
	err      error
	finished bool
}

// AlgorithmsModel lists the multipliers with their progress and outcome,
// followed by the reference product once the run is complete.
type AlgorithmsModel struct {
	rows     []algoRow
	product  string
	status   string
	failed   bool
	showFull bool
	width    int
	height   int
}

// NewAlgorithmsModel creates a panel with one row per name, in run order.
func NewAlgorithmsModel(names []string) AlgorithmsModel {
	rows := make([]algoRow, len(names))
	for i, n := range names {
		rows[i] = algoRow{name: n}
	}
	return AlgorithmsModel{rows: rows}
}

// SetSize updates dimensions.
func (m *AlgorithmsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// ToggleFull switches between the truncated and the full product.
func (m *AlgorithmsModel) ToggleFull() { m.showFull = !m.showFull }

// Reset clears progress and results, keeping the rows.
func (m *AlgorithmsModel) Reset() {
	for i := range m.rows {
		m.rows[i] = algoRow{name: m.rows[i].name}
	}
	m.product, m.status, m.failed = "", "", false
}

// UpdateProgress records a progress value for the row at index.
func (m *AlgorithmsModel) UpdateProgress(index int, value float64) {
	if index >= 0 && index < len(m.rows) {
		m.rows[index].progress = value
	}
}

// SetResults records the outcome of each multiplier, matched by name.
func (m *AlgorithmsModel) SetResults(results []orchestration.CalculationResult) {
	byName := make(map[string]orchestration.CalculationResult, len(results))
	for _, r := range results {
		byName[r.Name] = r
	}
	for i := range m.rows {
		r, ok := byName[m.rows[i].name]
		if !ok {
			continue
		}
		m.rows[i].finished = true
		m.rows[i].duration = r.Duration
		m.rows[i].err = r.Err
		if r.Err == nil {
			m.rows[i].progress = 1
		}
	}
}

// SetProduct records the reference product.
func (m *AlgorithmsModel) SetProduct(product string) {
	m.product = product
	m.status = "All valid results are consistent"
}

// SetError records that no multiplier succeeded.
func (m *AlgorithmsModel) SetError(err error) {
	m.failed = true
	m.status = "No multiplier completed"
	if err != nil {
		m.status = err.Error()
	}
}

// SetMismatch records that the products differ.
func (m *AlgorithmsModel) SetMismatch() {
	m.failed = true
	m.status = "The algorithms returned different products"
}

// View renders the panel.
func (m AlgorithmsModel) View() string {
	inner := max(m.width-4, 10)
	nameWidth := len("Algorithm")
	for _, r := range m.rows {
		nameWidth = max(nameWidth, len(r.name))
	}
	barWidth := max(inner-nameWidth-24, 5)

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Multipliers"))
	for _, r := range m.rows {
		b.WriteString("\n")
		b.WriteString(algoNameStyle.Render(fmt.Sprintf("%-*s", nameWidth, r.name)))
		b.WriteString(" ")
		b.WriteString(renderBar(r.progress, barWidth))
		b.WriteString(" ")
		b.WriteString(rowStatus(r))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(successStyle.Render(m.status))
		}
	}
	if m.product != "" {
		b.WriteString("\n")
		b.WriteString(metricLabelStyle.Render(fmt.Sprintf("Product (%s digits): ",
			format.FormatNumberString(fmt.Sprint(len(m.product))))))
		b.WriteString("\n")
		b.WriteString(m.renderProduct(inner))
	}

	return panelStyle.Width(max(m.width-2, 0)).Height(max(m.height-2, 0)).Render(b.String())
}

func (m AlgorithmsModel) renderProduct(width int) string {
	p := m.product
	if !m.showFull {
		p = format.TruncateDigits(p, 2*productEdges+8, productEdges)
	}
	if width <= 0 || len(p) <= width {
		return metricValueStyle.Render(p)
	}
	var lines []string
	for len(p) > width {
		lines = append(lines, p[:width])
		p = p[width:]
	}
	lines = append(lines, p)
	return metricValueStyle.Render(strings.Join(lines, "\n"))
}

func rowStatus(r algoRow) string {
	switch {
	case !r.finished:
		return metricLabelStyle.Render(fmt.Sprintf("%5.1f%%", r.progress*100))
	case r.err != nil:
		return errorStyle.Render("failed")
	default:
		return successStyle.Render(format.FormatExecutionDuration(r.duration))
	}
}

// renderBar draws a width-cell bar filled to progress.
func renderBar(progress float64, width int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(width))
	return barStyle.Render(strings.Repeat("█", filled)) + barEmptyStyle.Render(strings.Repeat("░", width-filled))
}
