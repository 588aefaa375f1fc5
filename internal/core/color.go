package core

// Color is a foreground color for a screen cell.
// Values are mapped to ANSI codes by the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorGreen
	ColorYellow
	ColorCyan
	ColorRed
)
