package scatter

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Predefined colors used by the default plot style.
var (
	Transparent = RGBA{0, 0, 0, 0}
	White       = RGBA{1, 1, 1, 1}
	Black       = RGBA{0, 0, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 0.5, 0, 1}
	LightGray   = RGBA{0.85, 0.85, 0.85, 1}
	Gray        = RGBA{0.5, 0.5, 0.5, 1}
)

// clamp255 clamps a value to the range [0, 255].
func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
