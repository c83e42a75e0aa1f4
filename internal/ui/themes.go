package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a set of ANSI escape codes for one color scheme.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme targets dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;45m",  // cyan
		Secondary: "\033[38;5;245m", // grey
		Success:   "\033[38;5;78m",  // green
		Warning:   "\033[38;5;221m", // yellow
		Error:     "\033[38;5;203m", // red
		Info:      "\033[38;5;176m", // pink
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme targets light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;25m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;90m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all escape codes.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme holds the lipgloss colors of the dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default dashboard palette.
	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#D8DEE9"),
		Border:  lipgloss.Color("#3B8EEA"),
		Accent:  lipgloss.Color("#22D3EE"),
		Success: lipgloss.Color("#A3BE8C"),
		Warning: lipgloss.Color("#EBCB8B"),
		Error:   lipgloss.Color("#BF616A"),
		Dim:     lipgloss.Color("#6B7280"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme returns the dashboard palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "dark", "light" or "none". Unknown
// names select the dark theme.
func SetTheme(name string) {
	switch name {
	case LightTheme.Name:
		SetCurrentTheme(LightTheme)
	case NoColorTheme.Name:
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(DarkTheme)
	}
}

// InitTheme selects the no-color theme when noColor is set or the NO_COLOR
// environment variable exists (https://no-color.org/), and the dark theme
// otherwise.
func InitTheme(noColor bool) {
	if _, exists := os.LookupEnv("NO_COLOR"); noColor || exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
