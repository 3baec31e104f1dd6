package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal colors.
type Color uint8

// Predefined colors for slope elements.
const (
	ColorDefault Color = iota
	ColorSnow
	ColorTree
	ColorRock
	ColorStump
	ColorSkier
	ColorYeti
	ColorBoundary
	ColorHud
)
