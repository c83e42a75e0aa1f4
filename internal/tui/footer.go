package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// FooterModel renders the key help and the run status.
type FooterModel struct {
	keymap KeyMap
	paused bool
	done   bool
	failed bool
	width  int
}

// NewFooterModel creates a footer for keymap.
func NewFooterModel(keymap KeyMap) FooterModel {
	return FooterModel{keymap: keymap}
}

func (f *FooterModel) SetWidth(w int) { f.width = w }
func (f *FooterModel) SetPaused(p bool) { f.paused = p }
func (f *FooterModel) SetDone(d bool) { f.done = d }
func (f *FooterModel) SetError(e bool) { f.failed = e }

// Status returns the plain status label.
func (f FooterModel) Status() string {
	switch {
	case f.failed:
		return "ERROR"
	case f.done:
		return "DONE"
	case f.paused:
		return "PAUSED"
	default:
		return "RUNNING"
	}
}

// View renders the footer.
func (f FooterModel) View() string {
	var parts []string
	for _, b := range []key.Binding{f.keymap.Quit, f.keymap.Pause, f.keymap.Reset, f.keymap.Verbose} {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	help := strings.Join(parts, footerDescStyle.Render("  •  "))

	style := statusRunningStyle
	switch f.Status() {
	case "ERROR":
		style = statusErrorStyle
	case "DONE":
		style = statusDoneStyle
	case "PAUSED":
		style = statusPausedStyle
	}
	return " " + style.Render(f.Status()) + "  " + help
}
