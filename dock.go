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

import "image"

// edgeFrame converts between widget coordinates and the coordinates of a
// marker edge. In edge coordinates "along" is measured on the marker axis
// from the start of the plot area, and "across" is measured from the
// widget edge towards the plot area.
type edgeFrame struct {
	axis     Axis
	mirrored bool
	origin   int // start of the plot area along the axis, in widget coordinates
	edge     int // widget coordinate of the mount edge (the far one if mirrored)

	plotAlong  int // plot-area size along the axis
	plotStart  int // across-distance from the edge to the plot area
	plotAcross int // plot-area size across the axis
}

func newEdgeFrame(e Edge, l Layout) edgeFrame {
	f := edgeFrame{axis: e.Axis(), mirrored: e.mirrored()}
	w, p := l.Widget, l.Plot
	switch e {
	case Top:
		f.edge = w.Min.Y
		f.plotStart = p.Min.Y - w.Min.Y
	case Bottom:
		f.edge = w.Max.Y
		f.plotStart = w.Max.Y - p.Max.Y
	case Left:
		f.edge = w.Min.X
		f.plotStart = p.Min.X - w.Min.X
	case Right:
		f.edge = w.Max.X
		f.plotStart = w.Max.X - p.Max.X
	}
	if f.axis == Horizontal {
		f.origin = p.Min.X
		f.plotAlong = p.Dx()
		f.plotAcross = p.Dy()
	} else {
		f.origin = p.Min.Y
		f.plotAlong = p.Dy()
		f.plotAcross = p.Dx()
	}
	return f
}

// rect maps the edge-coordinate rectangle [a0, a1) x [p0, p1) to widget
// coordinates.
func (f edgeFrame) rect(a0, p0, a1, p1 int) image.Rectangle {
	a0 += f.origin
	a1 += f.origin
	if f.mirrored {
		p0, p1 = f.edge-p1, f.edge-p0
	} else {
		p0, p1 = f.edge+p0, f.edge+p1
	}
	if f.axis == Horizontal {
		return image.Rect(a0, p0, a1, p1)
	}
	return image.Rect(p0, a0, p1, a1)
}

// point maps the pixel at edge coordinates (a, p) to widget coordinates.
func (f edgeFrame) point(a, p int) image.Point {
	a += f.origin
	if f.mirrored {
		p = f.edge - 1 - p
	} else {
		p = f.edge + p
	}
	if f.axis == Horizontal {
		return image.Pt(a, p)
	}
	return image.Pt(p, a)
}

// ComputeGeometry places marker m for the viewport vp. It returns the new
// geometry together with the dock depth: the (negative) near depth when
// docked at the near end, the (positive) far depth when docked at the far
// end, and 0 when floating. m is not modified.
//
// Docking uses the half extent of the floating glyph and the marker's
// deadzone: the marker floats only while the whole floating glyph plus the
// deadzone fits into the viewport. When both conditions fail, which needs a
// viewport narrower than the glyph plus twice the deadzone, the near end
// wins.
//
// Geometry is computed as if the marker were mounted on the top or left
// edge; for the bottom and right edge the result is mirrored across the
// widget, which matches the pre-oriented glyphs.
func ComputeGeometry(m *Marker, vp *Viewport, l Layout) (Geometry, int) {
	f := newEdgeFrame(m.Edge, l)
	axis := m.Edge.Axis()
	near := vp.Near(axis)
	half := m.FloatingGlyph.Along / 2

	nearDepth := m.Position - half - near - m.Deadzone
	farDepth := m.Position + half - vp.Far(axis) + m.Deadzone

	var g Geometry
	var depth int
	switch {
	case nearDepth < 0:
		g.State = DockedNear
		depth = nearDepth
		a0, p0 := m.Dock.Along, m.Dock.Across
		g.Draw = f.rect(a0, p0, a0+m.DockedGlyph.Along, p0+m.DockedGlyph.Across)

	case farDepth > 0:
		g.State = DockedFar
		depth = farDepth
		a0 := f.plotAlong - m.Dock.Along - m.DockedGlyph.Along
		p0 := m.Dock.Across
		g.Draw = f.rect(a0, p0, a0+m.DockedGlyph.Along, p0+m.DockedGlyph.Across)

	default:
		g.State = Floating
		c := m.Position - near
		a0, p0 := c-half, m.Ceiling
		g.Draw = f.rect(a0, p0, a0+m.FloatingGlyph.Along, p0+m.FloatingGlyph.Across)

		// The pointer crosses the plot area, starting at the side facing the
		// glyph. It must not reach into the margin, which is not scrolled.
		first := f.plotStart
		last := max(first+f.plotAcross-1, first)
		g.Pointer = Segment{A: f.point(c, first), B: f.point(c, last)}
	}
	g.Glyph = GlyphFor(m.Edge, g.State)
	g.Depth = depth

	if g.State == Floating {
		hit := g.Pointer.Bounds().Inset(-m.PointerSlop)
		g.Sensitive = g.Draw.Union(hit)
	} else {
		c := g.Draw.Min.Add(g.Draw.Max).Div(2)
		g.Pointer = Segment{A: c, B: c}
		g.Sensitive = g.Draw
	}
	return g, depth
}
