package raster

import (
	"image"
	"image/color"
)

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// RGB565Target renders into an RGB565 framebuffer buffer, little endian.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 || t.W <= 0 || t.H <= 0 {
		return
	}
	p := RGB565(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	if t == nil || t.Buf == nil || t.Stride <= 0 {
		return
	}
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := RGB565(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

// RGB565 packs 8-bit channels as rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

// RGB888 expands an RGB565 pixel.
func RGB888(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F
	return uint8((rr * 255) / 31), uint8((gg * 255) / 63), uint8((bb * 255) / 31)
}

// ImageTarget renders into an *image.RGBA, e.g. for PNG output.
type ImageTarget struct {
	Img *image.RGBA
}

func NewImageTarget(w, h int) *ImageTarget {
	return &ImageTarget{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (t *ImageTarget) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *ImageTarget) Clear(c Color) {
	rgba := color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	b := t.Img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t.Img.SetRGBA(x, y, rgba)
		}
	}
}

func (t *ImageTarget) SetPixel(x, y int, c Color) {
	b := t.Img.Bounds()
	x += b.Min.X
	y += b.Min.Y
	if !(image.Point{X: x, Y: y}).In(b) {
		return
	}
	t.Img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
}
