package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal styles.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
