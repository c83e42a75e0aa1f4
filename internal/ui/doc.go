// Package ui holds the color themes shared by the CLI, the usage message and
// the TUI dashboard. Colors are read from the active theme so that --no-color
// and NO_COLOR switch every output at once.
package ui
