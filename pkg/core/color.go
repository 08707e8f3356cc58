package core

import "image/color"

// Color is a linear RGB triple. Components may leave [0, 1] while shading;
// they are clamped only when converted to pixels.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Scene palette
var (
	Black      = Color{0.0, 0.0, 0.0}
	White      = Color{1.0, 1.0, 1.0}
	Yellow     = Color{1.0, 1.0, 0.0}
	DarkOrange = Color{1.0, 0.6, 0.0}
	Red        = Color{1.0, 0.0, 0.0}
	LightGreen = Color{0.4, 1.0, 0.4}
	Magenta    = Color{0.8, 0.1, 0.8}
	DarkBlue   = Color{0.4, 0.4, 0.8}
	LightBlue  = Color{0.6, 0.9, 1.0}
)

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the component-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns the color with every component clamped to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: max(0.0, min(1.0, c.R)),
		G: max(0.0, min(1.0, c.G)),
		B: max(0.0, min(1.0, c.B)),
	}
}

// ToRGBA converts the clamped color to an opaque 8-bit pixel. Each channel is
// scaled by 255 and truncated toward zero.
func (c Color) ToRGBA() color.RGBA {
	c = c.Clamp()
	return color.RGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: 255,
	}
}

// ColorFromRGBA converts an 8-bit pixel to a Color, ignoring alpha
func ColorFromRGBA(rgba color.RGBA) Color {
	return Color{
		R: float64(rgba.R) / 255.0,
		G: float64(rgba.G) / 255.0,
		B: float64(rgba.B) / 255.0,
	}
}
