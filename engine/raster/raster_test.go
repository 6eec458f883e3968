package raster

import (
	"image/color"
	"testing"

	"github.com/restimel/insideCube/engine/projection"
	"github.com/restimel/insideCube/engine/shape"
	"github.com/restimel/insideCube/engine/vec"
)

func at(t *ImageTarget, x, y int) color.RGBA { return t.Img.RGBAAt(x, y) }

var (
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

func render(t *testing.T, w, h int, view Viewport, shapes ...shape.Shape) *ImageTarget {
	t.Helper()
	img := NewImageTarget(w, h)
	NewPainter(view).Render(img, projection.Project(shapes, 0, 0, 0))
	return img
}

func TestPaintFilledRect(t *testing.T) {
	img := render(t, 20, 20, Viewport{Scale: 1},
		shape.NewRect(vec.V(2, 2, 0), vec.V(10, 10, 0), "#ff0000", shape.None, false))
	if got := at(img, 6, 6); got != red {
		t.Fatalf("inside pixel=%v", got)
	}
	if got := at(img, 2, 2); got != red {
		t.Fatalf("corner pixel=%v", got)
	}
	if got := at(img, 15, 15); got != black {
		t.Fatalf("outside pixel=%v", got)
	}
}

func TestPaintFilledRectReversedWinding(t *testing.T) {
	img := render(t, 20, 20, Viewport{Scale: 1},
		shape.NewRect(vec.V(10, 2, 0), vec.V(2, 10, 0), "#ff0000", shape.None, false))
	if got := at(img, 6, 6); got != red {
		t.Fatalf("inside pixel=%v", got)
	}
}

func TestPaintOutlineOnly(t *testing.T) {
	img := render(t, 20, 20, Viewport{Scale: 1},
		shape.NewRect(vec.V(2, 2, 0), vec.V(10, 10, 0), shape.Transparent, "#ff0000", false))
	if got := at(img, 6, 6); got != black {
		t.Fatalf("transparent fill painted: %v", got)
	}
	if got := at(img, 2, 6); got != red {
		t.Fatalf("edge pixel=%v", got)
	}
}

func TestPaintOrder(t *testing.T) {
	back := shape.NewRect(vec.V(0, 0, -1), vec.V(10, 10, -1), "#0000ff", shape.None, false)
	front := shape.NewRect(vec.V(0, 0, 1), vec.V(10, 10, 1), "#ff0000", shape.None, false)
	// Input order is front first; depth sorting must still paint it last.
	img := render(t, 12, 12, Viewport{Scale: 1}, front, back)
	if got := at(img, 5, 5); got != red {
		t.Fatalf("nearest face hidden: %v", got)
	}
}

func TestPaintDecorationOverFace(t *testing.T) {
	face := shape.NewRect(vec.V(0, 0, 0), vec.V(16, 16, 0), "#ffffff", "#00ff00", false,
		shape.Placement{Position: 0.5, Width: 0.5, Height: 0.5, Kind: shape.MarkSlot})
	img := render(t, 17, 17, Viewport{Scale: 1}, face)
	if got := at(img, 8, 8); got != (color.RGBA{G: 0xFF, A: 0xFF}) {
		t.Fatalf("slot pixel=%v", got)
	}
	if got := at(img, 2, 8); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("face pixel=%v", got)
	}
}

func TestPaintGradient(t *testing.T) {
	img := render(t, 20, 20, Viewport{Scale: 1},
		shape.NewRect(vec.V(0, 0, 0), vec.V(19, 19, 0), "#ff0000", shape.None, true))
	top, bottom := at(img, 10, 0), at(img, 10, 19)
	if top.R != 0xFF {
		t.Fatalf("top=%v", top)
	}
	if bottom.R != 0xCC {
		t.Fatalf("bottom=%v, want darkened to 0xcc", bottom)
	}
}

func TestPaintText(t *testing.T) {
	face := shape.NewRect(vec.V(0, 0, 0), vec.V(40, 20, 0), shape.Transparent, "#ff0000", false,
		shape.Placement{Position: 0.5, Width: 1, Height: 1, Kind: shape.MarkText, Detail: "I"})
	img := render(t, 41, 21, Viewport{Scale: 1}, face)
	// One glyph of size 20 starts 10 before the center: 'I' is a vertical stroke at x=10.
	if got := at(img, 10, 10); got != red {
		t.Fatalf("glyph pixel=%v", got)
	}
}

func TestFit(t *testing.T) {
	projs := projection.Project([]shape.Shape{
		shape.NewRect(vec.V(-2, -1, 0), vec.V(2, 1, 0), "#ffffff", shape.None, false),
	}, 0, 0, 0)
	v := Fit(projs, 101, 101, 10)
	if v.Scale != 20 {
		t.Fatalf("scale=%v", v.Scale)
	}
	x0, y0 := v.toScreen(vec.Point{X: -2, Y: -1})
	x1, y1 := v.toScreen(vec.Point{X: 2, Y: 1})
	if x0 != 10 || x1 != 90 || y0 != 30 || y1 != 70 {
		t.Fatalf("fitted box=(%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}

	if got := Fit(nil, 11, 11, 0); got != Centered(11, 11, 1) {
		t.Fatalf("empty fit=%+v", got)
	}
}

func TestRGB565Target(t *testing.T) {
	tg := &RGB565Target{Buf: make([]byte, 4*2*3), Stride: 8, W: 4, H: 3}
	tg.Clear(RGB(0xFF, 0xFF, 0xFF))
	tg.SetPixel(1, 2, RGB(0xFF, 0, 0))
	tg.SetPixel(-1, 0, RGB(0, 0xFF, 0))
	tg.SetPixel(4, 0, RGB(0, 0xFF, 0))

	px := func(x, y int) uint16 {
		off := y*tg.Stride + x*2
		return uint16(tg.Buf[off]) | uint16(tg.Buf[off+1])<<8
	}
	if px(1, 2) != 0xF800 {
		t.Fatalf("red pixel=%#04x", px(1, 2))
	}
	if px(0, 0) != 0xFFFF || px(3, 0) != 0xFFFF {
		t.Fatalf("clipped writes leaked")
	}
	r, g, b := RGB888(px(1, 2))
	if r != 0xFF || g != 0 || b != 0 {
		t.Fatalf("RGB888=%d,%d,%d", r, g, b)
	}
}

func TestParseColor(t *testing.T) {
	if _, ok := ParseColor(shape.Transparent); ok {
		t.Fatalf("transparent should not paint")
	}
	if _, ok := ParseColor("none"); ok {
		t.Fatalf("none should not paint")
	}
	if _, ok := ParseColor("#12345"); ok {
		t.Fatalf("short hex should not paint")
	}
	c, ok := ParseColor("#3060E0")
	if !ok || c != RGB(0x30, 0x60, 0xE0) {
		t.Fatalf("ParseColor=%v,%v", c, ok)
	}
	if got := RGB(200, 100, 0).MulScalar(0.5); got != RGB(100, 50, 0) {
		t.Fatalf("MulScalar=%v", got)
	}
}
