package ui

// Color functions return escape codes from the active theme.

// ColorReset returns the reset escape code.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the info color.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan returns the secondary color.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ThemeColors exposes the active theme through the small color interfaces
// of other packages, such as apperrors.ColorProvider.
type ThemeColors struct{}

// Yellow returns the warning color.
func (ThemeColors) Yellow() string { return ColorYellow() }

// Red returns the error color.
func (ThemeColors) Red() string { return ColorRed() }

// Green returns the success color.
func (ThemeColors) Green() string { return ColorGreen() }

// Reset returns the reset escape code.
func (ThemeColors) Reset() string { return ColorReset() }
