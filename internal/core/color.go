package core

import "strconv"

// Color is an ANSI 256-color palette index. ColorDefault leaves the
// terminal's own color in place.
type Color int16

// ColorDefault means "no explicit color".
const ColorDefault Color = -1

// Named palette entries used by the renderers.
const (
	ColorBlack         Color = 0
	ColorRed           Color = 1
	ColorGreen         Color = 2
	ColorYellow        Color = 3
	ColorBlue          Color = 4
	ColorMagenta       Color = 5
	ColorCyan          Color = 6
	ColorWhite         Color = 7
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
	ColorOrange        Color = 208
	ColorGray          Color = 245
	ColorDarkGray      Color = 238
	ColorSoil          Color = 22
	ColorMoss          Color = 28
)

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c < 0
}

// String returns the palette index as a decimal string, the form lipgloss expects.
func (c Color) String() string {
	if c.IsDefault() {
		return ""
	}
	return strconv.Itoa(int(c))
}
