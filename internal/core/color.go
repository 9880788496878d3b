package core

// Color is a foreground color for a screen glyph.
// The terminal adapter maps it to an ANSI 256-color code.
type Color uint8

// Palette used by the snake HUD and sprites.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBlack
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
	ColorDarkRed
)
