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

package scope

import (
	"fmt"
	"image"
)

// GlyphID identifies one pre-oriented marker glyph.
// There is one glyph for every combination of Edge and DockState.
type GlyphID int

// NumGlyphs is the number of distinct glyph ids.
const NumGlyphs = 12

// glyphTable maps (edge, state) to a glyph id.
var glyphTable = [4][3]GlyphID{
	Top:    {Floating: 0, DockedNear: 1, DockedFar: 2},
	Right:  {Floating: 3, DockedNear: 4, DockedFar: 5},
	Bottom: {Floating: 6, DockedNear: 7, DockedFar: 8},
	Left:   {Floating: 9, DockedNear: 10, DockedFar: 11},
}

// GlyphFor returns the glyph shown by a marker on edge e in state s.
func GlyphFor(e Edge, s DockState) GlyphID {
	return glyphTable[e][s]
}

// Edge returns the mount edge the glyph belongs to.
func (g GlyphID) Edge() Edge {
	return Edge(int(g) / 3)
}

// State returns the dock state the glyph belongs to.
func (g GlyphID) State() DockState {
	return DockState(int(g) % 3)
}

func (g GlyphID) String() string {
	return fmt.Sprintf("%s/%s", g.Edge(), g.State())
}

// Direction gives the screen direction an arrow glyph points to, as a unit
// vector. Floating glyphs point into the plot area, docked glyphs point
// outward along the marker axis.
func (g GlyphID) Direction() image.Point {
	e := g.Edge()
	switch g.State() {
	case DockedNear:
		if e.Axis() == Horizontal {
			return image.Pt(-1, 0)
		}
		return image.Pt(0, -1)
	case DockedFar:
		if e.Axis() == Horizontal {
			return image.Pt(1, 0)
		}
		return image.Pt(0, 1)
	}
	switch e {
	case Top:
		return image.Pt(0, 1)
	case Right:
		return image.Pt(-1, 0)
	case Bottom:
		return image.Pt(0, -1)
	default:
		return image.Pt(1, 0)
	}
}

// GlyphStore supplies the bitmaps for marker glyphs.
// The store prepares every variant in advance; images are only ever
// selected, never transformed while drawing.
type GlyphStore interface {
	Glyph(id GlyphID) image.Image
}
