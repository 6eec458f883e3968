// Package glyph draws text as stroked vector paths laid on an axis-aligned face.
package glyph

import (
	"math"
	"unicode/utf8"

	"github.com/restimel/insideCube/engine/vec"
)

// widthRatio is the glyph half-width relative to its half-height.
const widthRatio = 0.7

// DrawChar returns the outline of r scaled to a glyph of the given size, centered on the origin.
// Unknown runes produce an empty path.
func DrawChar(r rune, size float64) []vec.Point {
	outline, ok := outlines[r]
	if !ok {
		return []vec.Point{}
	}
	midSize := size / 2
	maxWidth := midSize * widthRatio

	pts := make([]vec.Point, len(outline))
	for i, p := range outline {
		pts[i] = vec.Point{X: p.X * maxWidth, Y: p.Y * midSize}
	}
	return pts
}

// DrawString lays s out in a single row inside box, one path per rune.
//
// Glyphs share one size, the largest that fits both the box height and an equal share of its
// width. The row starts half its length before the box center along the face's width axis and
// glyph i is drawn around start+size*i. With reverse set the row is mirrored around the center,
// so text on a face seen from behind reads left to right.
func DrawString(s string, box [2]vec.Vertex, reverse bool) [][]vec.Vertex {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return nil
	}

	center := vec.MidPoint(box[0], box[1])
	w, h, dir := vec.WidthHeight(box[0], box[1])
	size := math.Min(h, w/float64(n))
	start := -float64(n) * size / 2
	order := 1.0
	if reverse {
		order = -1
	}

	paths := make([][]vec.Vertex, 0, n)
	idx := 0
	for _, r := range s {
		slot := start + size*float64(idx)
		pts := DrawChar(r, size)
		path := make([]vec.Vertex, len(pts))
		for i, p := range pts {
			path[i] = dir.Place(center, (p.X+slot)*order, p.Y)
		}
		paths = append(paths, path)
		idx++
	}
	return paths
}
