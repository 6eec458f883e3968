package shape

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/restimel/insideCube/engine/vec"
)

// DarkenFactor scales each channel of the faces turned away from the light.
const DarkenFactor = 0.8

// ErrInvalidColor is returned for fills that are not "#" followed by six hex digits.
var ErrInvalidColor = errors.New("invalid color")

// Faces holds per-face decorations for NewCube.
type Faces struct {
	Front  []Placement
	Back   []Placement
	Top    []Placement
	Bottom []Placement
	Left   []Placement
	Right  []Placement
}

// ParseHex parses a "#rrggbb" color.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
		}
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w: %v", s, ErrInvalidColor, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Darken multiplies each channel of a "#rrggbb" color by DarkenFactor.
func Darken(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	dark := colorful.Color{
		R: darkenChannel(c.R),
		G: darkenChannel(c.G),
		B: darkenChannel(c.B),
	}
	return dark.Hex(), nil
}

// darkenChannel returns the darkened 8-bit channel as a colorful component in [0, 1].
func darkenChannel(v uint8) float64 {
	return math.Round(float64(v)*DarkenFactor) / 255
}

// NewCube builds the six faces of the box centered on center with the given dimensions, in the
// order front, back, top, bottom, left, right. Back, bottom and left use the darkened fill.
func NewCube(center, dims vec.Vertex, fill, stroke string, faces Faces) ([]Shape, error) {
	back, err := Darken(fill)
	if err != nil {
		return nil, fmt.Errorf("cube fill: %w", err)
	}

	c := center
	ox, oy, oz := dims.X/2, dims.Y/2, dims.Z/2

	return []Shape{
		NewRect(vec.V(c.X-ox, c.Y-oy, c.Z+oz), vec.V(c.X+ox, c.Y+oy, c.Z+oz), fill, stroke, true, faces.Front...),
		NewRect(vec.V(c.X-ox, c.Y-oy, c.Z-oz), vec.V(c.X+ox, c.Y+oy, c.Z-oz), back, stroke, true, faces.Back...),
		NewRect(vec.V(c.X-ox, c.Y-oy, c.Z-oz), vec.V(c.X+ox, c.Y-oy, c.Z+oz), fill, stroke, true, faces.Top...),
		NewRect(vec.V(c.X-ox, c.Y+oy, c.Z-oz), vec.V(c.X+ox, c.Y+oy, c.Z+oz), back, stroke, true, faces.Bottom...),
		NewRect(vec.V(c.X-ox, c.Y-oy, c.Z-oz), vec.V(c.X-ox, c.Y+oy, c.Z+oz), back, stroke, true, faces.Left...),
		NewRect(vec.V(c.X+ox, c.Y-oy, c.Z-oz), vec.V(c.X+ox, c.Y+oy, c.Z+oz), fill, stroke, true, faces.Right...),
	}, nil
}
