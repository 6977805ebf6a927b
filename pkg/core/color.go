package core

import "image/color"

// RGB is a shaded pixel color with integer channels.
// Channels are not clamped and may fall outside [0, 255].
type RGB struct {
	R, G, B int
}

// NewRGB creates a new RGB color
func NewRGB(r, g, b int) RGB {
	return RGB{R: r, G: g, B: b}
}

// RGBFromVec3 truncates each component toward zero
func RGBFromVec3(v Vec3) RGB {
	return RGB{R: int(v.X), G: int(v.Y), B: int(v.Z)}
}

// RGBA converts to an 8-bit color. Out-of-range channels wrap to the
// low 8 bits, the same as handing an int to an 8-bit channel API.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R),
		G: uint8(c.G),
		B: uint8(c.B),
		A: 255,
	}
}
