package raster

import "github.com/restimel/insideCube/engine/shape"

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// MulScalar scales the color channels by s clamped to [0,1]. Alpha is kept.
func (c Color) MulScalar(s float64) Color {
	if s < 0 {
		s = 0
	}
	if s > 1 {
		s = 1
	}
	mul := func(ch uint8) uint8 {
		return uint8(float64(ch)*s + 0.5)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}

// ParseColor converts a shape paint value. It reports false for "transparent", "none", the empty
// string and anything that is not "#rrggbb": such paint is skipped.
func ParseColor(s string) (Color, bool) {
	switch s {
	case "", shape.Transparent, shape.None:
		return Color{}, false
	}
	c, err := shape.ParseHex(s)
	if err != nil {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, true
}
