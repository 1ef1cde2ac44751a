package core

// Color represents a foreground color for a screen cell.
// The TUI maps each value onto an ANSI 256-color code.
type Color uint8

// Palette used by the shooter renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)
