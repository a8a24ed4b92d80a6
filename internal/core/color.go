package core

// Color represents a foreground color for a screen cell.
// Frontends map each value to an ANSI 256-color code.
type Color uint8

// Colors used when drawing the game into a Screen.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
