package core

// Color is a palette index for a screen cell. The TUI layer maps it to
// an ANSI 256-colour code.
type Color uint8

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

// Bright reports whether c is one of the high-intensity colours.
func (c Color) Bright() bool {
	return c >= ColorBrightRed && c <= ColorBrightWhite
}

// Dim returns the normal-intensity counterpart of a bright colour.
// Other colours are returned unchanged.
func (c Color) Dim() Color {
	if !c.Bright() {
		return c
	}
	return c - (ColorBrightRed - ColorRed)
}
