package ui2d

import "github.com/Faultbox/midgard-nav/internal/nav"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Menu theme colors.
var (
	ColorPanelBg     = Color{0.08, 0.08, 0.12, 0.95}
	ColorPanelBorder = Color{0.3, 0.3, 0.4, 1}
	ColorSelector    = Color{0.95, 0.75, 0.2, 1}
	ColorText        = Color{0.9, 0.9, 0.9, 1}
	ColorTextDim     = Color{0.5, 0.5, 0.6, 1}
	ColorHighlight   = Color{0.2, 0.6, 0.9, 1}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// Darken returns a darker version of the color.
func (c Color) Darken(factor float32) Color {
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

// FromNav converts a navigation brush color.
func FromNav(c nav.Color) Color {
	return Color{c.R, c.G, c.B, c.A}
}

// ToNav converts a color to a navigation brush color.
func (c Color) ToNav() nav.Color {
	return nav.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
