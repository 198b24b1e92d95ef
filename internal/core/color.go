package core

// Color is a logical foreground color for a screen cell. The platform maps
// each value onto a terminal color.
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
	ColorOrange
	ColorGray
	ColorBrightWhite
	ColorBrightYellow
)

// RowColor returns the color of the row-th entry of a repeating ramp.
func RowColor(row int) Color {
	ramp := [...]Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan, ColorBlue, ColorMagenta, ColorWhite}
	if row < 0 {
		row = -row
	}
	return ramp[row%len(ramp)]
}
