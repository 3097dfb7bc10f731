package core

// Color is a foreground color for a screen cell.
// Front-ends translate it to ANSI codes or RGB as they see fit.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightRed
	ColorGray
)

// RGB returns the color as normalized red, green, blue components.
// ColorDefault maps to white.
func (c Color) RGB() (r, g, b float32) {
	switch c {
	case ColorRed:
		return 0.8, 0.1, 0.1
	case ColorGreen:
		return 0.1, 0.7, 0.2
	case ColorYellow:
		return 1, 1, 0
	case ColorCyan:
		return 0.1, 0.8, 0.8
	case ColorBrightGreen:
		return 0.4, 1, 0.4
	case ColorBrightRed:
		return 1, 0.3, 0.3
	case ColorGray:
		return 0.55, 0.55, 0.55
	default:
		return 1, 1, 1
	}
}
