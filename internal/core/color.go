package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
)

// ShadeCount is the number of entries in the green shade ramp.
const ShadeCount = 19

// ColorShadeBase is the first color of the shade ramp. Shades are used where
// a game needs many distinguishable pieces (tetromino variants).
const ColorShadeBase Color = 64

// Shade returns the i-th color of the shade ramp, wrapping around.
func Shade(i int) Color {
	return ColorShadeBase + Color(Mod(i, ShadeCount))
}

// IsShade reports whether c belongs to the shade ramp.
func (c Color) IsShade() bool {
	return c >= ColorShadeBase && c < ColorShadeBase+ShadeCount
}
