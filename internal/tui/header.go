package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fftmul/internal/format"
)

// HeaderModel renders the top bar. The title and operand sizes sit on the
// left and the elapsed time is right-aligned.
type HeaderModel struct {
	start    time.Time
	end      time.Time
	version  string
	operands string
	width    int
}

// NewHeaderModel creates a header for a digitsA × digitsB multiplication.
func NewHeaderModel(version string, digitsA, digitsB int) HeaderModel {
	return HeaderModel{
		start:   time.Now(),
		version: version,
		operands: format.FormatNumberString(fmt.Sprint(digitsA)) + " × " +
			format.FormatNumberString(fmt.Sprint(digitsB)) + " digits",
	}
}

// SetDone stops the clock.
func (h *HeaderModel) SetDone() { h.end = time.Now() }

// Reset restarts the clock.
func (h *HeaderModel) Reset() {
	h.start = time.Now()
	h.end = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// Elapsed returns the time since the run started, frozen by SetDone.
func (h HeaderModel) Elapsed() time.Duration {
	if h.end.IsZero() {
		return time.Since(h.start)
	}
	return h.end.Sub(h.start)
}

// View renders the header.
func (h HeaderModel) View() string {
	title := "FFT Multiply"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	left := titleStyle.Render(title) + versionStyle.Render("  "+h.operands)
	right := elapsedStyle.Render("Elapsed " + format.FormatExecutionDuration(h.Elapsed()))

	gap := max(h.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return headerStyle.Width(h.width).Render(left + strings.Repeat(" ", gap) + right)
}
