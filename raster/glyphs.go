// seehuhn.de/go/scope - geometry for a scrollable oscilloscope view
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import (
	"image"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/scope"
)

// unitArrow is a triangle in [-1,1]x[-1,1] pointing in +y direction.
var unitArrow = polygon(
	vec.Vec2{X: -1, Y: -1},
	vec.Vec2{X: 0, Y: 1},
	vec.Vec2{X: 1, Y: -1},
)

// polygon returns the closed path through the given corners.
func polygon(corners ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range corners {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, corners[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// ArrowGlyphs is a glyph store with a filled triangle for every glyph id.
// The triangle points in the direction given by GlyphID.Direction.
type ArrowGlyphs struct {
	images [scope.NumGlyphs]*image.Alpha
}

var _ scope.GlyphStore = (*ArrowGlyphs)(nil)

// NewArrowGlyphs rasterises all glyph variants. Floating and docked give
// the glyph extents relative to the marker axis, as in scope.Config.
func NewArrowGlyphs(floating, docked scope.Extent) *ArrowGlyphs {
	g := &ArrowGlyphs{}
	r := NewRasteriser(rect.Rect{})
	for id := range scope.GlyphID(scope.NumGlyphs) {
		ext := docked
		if id.State() == scope.Floating {
			ext = floating
		}
		w, h := ext.Along, ext.Across
		if id.Edge().Axis() == scope.Vertical {
			w, h = h, w
		}

		img := image.NewAlpha(image.Rect(0, 0, w, h))
		r.Reset(rect.Rect{URx: float64(w), URy: float64(h)})
		r.CTM = arrowMatrix(id.Direction(), w, h)
		r.FillNonZero(unitArrow, func(y, xMin int, coverage []float32) {
			row := img.Pix[y*img.Stride+xMin:]
			for i, c := range coverage {
				row[i] = uint8(c*255 + 0.5)
			}
		})
		g.images[id] = img
	}
	return g
}

// Glyph implements the scope.GlyphStore interface.
// The returned image is an *image.Alpha with the origin at (0, 0).
func (g *ArrowGlyphs) Glyph(id scope.GlyphID) image.Image {
	return g.images[id]
}

// arrowMatrix maps unitArrow onto a w x h box, with the tip pointing in
// direction dir.
func arrowMatrix(dir image.Point, w, h int) matrix.Matrix {
	hw, hh := float64(w)/2, float64(h)/2
	dx, dy := float64(dir.X), float64(dir.Y)
	return matrix.Matrix{-dy * hw, dx * hh, dx * hw, dy * hh, hw, hh}
}
