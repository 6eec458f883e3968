package app

import (
	"image/color"

	"github.com/restimel/insideCube/engine/raster"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// hud writes status lines in the top-left corner.
type hud struct {
	d          *targetDisplayer
	font       tinyfont.Fonter
	lineHeight int16
}

func newHUD(t raster.Target) *hud {
	font := &proggy.TinySZ8pt7b
	return &hud{
		d:          &targetDisplayer{t: t},
		font:       font,
		lineHeight: int16(font.GetYAdvance()),
	}
}

func (h *hud) draw(lines ...string) {
	for i, line := range lines {
		tinyfont.WriteLine(h.d, h.font, 2, h.lineHeight*int16(i+1), line, hudColor)
	}
}

var _ drivers.Displayer = (*targetDisplayer)(nil)

// targetDisplayer exposes a raster target as a tinyfont display.
type targetDisplayer struct {
	t raster.Target
}

func (d *targetDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), raster.Color{R: c.R, G: c.G, B: c.B, A: 0xFF})
}

func (d *targetDisplayer) Display() error { return nil }
