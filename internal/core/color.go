package core

// Color is a foreground colour for a screen cell. The platform maps it to
// terminal colours; the simulation only picks from this palette.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorSand
	ColorAmber
	ColorCyan
	ColorRed
)
