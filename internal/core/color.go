package core

// Color represents a foreground color for a screen cell.
// The platform layer maps it to ANSI 256-color codes.
type Color uint8

// Predefined colors for grid cells and HUD elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// Alpha bounds used by screen cells. Values in between are drawn faint.
const (
	AlphaTransparent uint8 = 0
	AlphaOpaque      uint8 = 255
)
