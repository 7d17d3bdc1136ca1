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

// Edge is the widget edge a marker is mounted on.
type Edge int

const (
	Top Edge = iota
	Right
	Bottom
	Left
)

// Axis returns the axis along which a marker on this edge moves.
// Markers on the top and bottom edge mark x positions.
func (e Edge) Axis() Axis {
	if e == Top || e == Bottom {
		return Horizontal
	}
	return Vertical
}

// mirrored reports whether geometry for e is obtained by mirroring the
// geometry of the opposite edge.
func (e Edge) mirrored() bool {
	return e == Right || e == Bottom
}

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// DockState describes where a marker glyph is shown.
type DockState int

const (
	// Floating markers are drawn at their marked position, with a pointer
	// line across the plot area.
	Floating DockState = iota

	// DockedNear markers have their position before the start of the
	// viewport and are pinned to the near end of their edge.
	DockedNear

	// DockedFar markers have their position beyond the end of the viewport
	// and are pinned to the far end of their edge.
	DockedFar
)

func (s DockState) String() string {
	switch s {
	case Floating:
		return "floating"
	case DockedNear:
		return "docked-near"
	case DockedFar:
		return "docked-far"
	}
	return fmt.Sprintf("DockState(%d)", int(s))
}

// Marker marks a position on the oscilloscope view. It can be a cursor, or
// the zero baseline of a data channel.
//
// The first group of fields is set by the owner. The Geometry is derived
// from them and the viewport by ComputeGeometry.
type Marker struct {
	Position int  // marked logical position along the edge's axis
	Edge     Edge // fixed at creation
	Deadzone int  // clearance from the dock boundary before docking
	Ceiling  int  // distance between the widget edge and the glyph
	Active   bool // inactive markers are neither drawn nor hit

	// Dock is the top-left corner of the docked glyph at the near end,
	// given as an offset along the axis from the start of the plot area and
	// an offset across from the widget edge.
	Dock Extent

	// FloatingGlyph and DockedGlyph are the glyph extents relative to the
	// marker axis.
	FloatingGlyph Extent
	DockedGlyph   Extent

	// PointerSlop widens the pointer line for hit testing.
	PointerSlop int

	Geometry
}

// Geometry is the screen geometry of a marker for one viewport position,
// in widget coordinates.
type Geometry struct {
	State     DockState
	Glyph     GlyphID
	Draw      image.Rectangle // where the glyph is drawn
	Pointer   Segment         // zero length unless floating
	Sensitive image.Rectangle // area which reacts to the mouse

	// Depth is how far the marker is inside the dock region, see
	// ComputeGeometry. It is 0 while floating.
	Depth int
}

// MarkerSet is the list of markers belonging to one view.
type MarkerSet struct {
	markers []*Marker
}

// Add appends m to the set and returns its index.
func (s *MarkerSet) Add(m *Marker) int {
	s.markers = append(s.markers, m)
	return len(s.markers) - 1
}

// Len returns the number of markers.
func (s *MarkerSet) Len() int {
	return len(s.markers)
}

// At returns the i-th marker.
func (s *MarkerSet) At(i int) *Marker {
	return s.markers[i]
}

// All iterates over the markers in drawing order.
func (s *MarkerSet) All() func(yield func(int, *Marker) bool) {
	return func(yield func(int, *Marker) bool) {
		for i, m := range s.markers {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Update recomputes the geometry of every marker and returns the previous
// geometries, indexed like the set.
func (s *MarkerSet) Update(vp *Viewport, l Layout) []Geometry {
	old := make([]Geometry, len(s.markers))
	for i, m := range s.markers {
		old[i] = m.Geometry
		m.Geometry, _ = ComputeGeometry(m, vp, l)
	}
	return old
}

// HitTest returns the index of the topmost active marker whose sensitive
// region contains p.
func (s *MarkerSet) HitTest(p image.Point) (int, bool) {
	for i := len(s.markers) - 1; i >= 0; i-- {
		m := s.markers[i]
		if m.Active && p.In(m.Sensitive) {
			return i, true
		}
	}
	return -1, false
}
