package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a terminal foreground colour.
// It holds either an ANSI code ("1".."255") or a "#rrggbb" hex string;
// the empty string is the terminal's default colour.
type Color string

// Predefined colours for HUD elements.
const (
	ColorDefault      Color = ""
	ColorRed          Color = "1"
	ColorGreen        Color = "2"
	ColorYellow       Color = "3"
	ColorCyan         Color = "6"
	ColorWhite        Color = "7"
	ColorBrightRed    Color = "9"
	ColorBrightYellow Color = "11"
	ColorBrightWhite  Color = "15"
	ColorGray         Color = "245"
)

// ColorFromRGB converts channels in [0,1] to a hex terminal colour.
// Out-of-range channels are clamped.
func ColorFromRGB(r, g, b float64) Color {
	return Color(colorful.Color{R: r, G: g, B: b}.Clamped().Hex())
}

// Shade mixes c towards white (t > 0) or black (t < 0) by |t| in Lab space.
// ANSI and default colours are returned unchanged.
func Shade(c Color, t float64) Color {
	base, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	target := colorful.Color{R: 1, G: 1, B: 1}
	if t < 0 {
		target = colorful.Color{}
		t = -t
	}
	return Color(base.BlendLab(target, ClampF(t, 0, 1)).Clamped().Hex())
}
