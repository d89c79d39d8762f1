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
	ColorDarkGray
	ColorLightBlue
)

var colorNames = map[string]Color{
	"default":    ColorDefault,
	"red":        ColorRed,
	"green":      ColorGreen,
	"yellow":     ColorYellow,
	"blue":       ColorBlue,
	"magenta":    ColorMagenta,
	"cyan":       ColorCyan,
	"white":      ColorWhite,
	"orange":     ColorOrange,
	"gray":       ColorGray,
	"grey":       ColorGray,
	"dark_gray":  ColorDarkGray,
	"light_blue": ColorLightBlue,
}

// ParseColor resolves a lower-case color name such as "red" or "light_blue".
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
