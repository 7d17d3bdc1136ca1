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

// Package scope computes the geometry of a scrollable oscilloscope view.
//
// A Scope keeps a dotted grid aligned with a pannable viewport and manages
// position markers (cursors and channel baselines) which dock at the ends of
// their edge when the marked position leaves the visible area. Each update
// produces a Frame: a list of primitive drawing commands together with the
// damaged regions they repaint. Pixels are produced by a renderer outside
// this package; see the raster sub-package for one implementation.
package scope

import "image"

// Scope is an oscilloscope view.
//
// All methods run to completion and leave the viewport and all marker
// geometry consistent. A Scope is not safe for concurrent use.
type Scope struct {
	cfg     Config
	layout  Layout
	vp      Viewport
	grid    *GridCache
	planner *Planner
	markers MarkerSet
	damage  DamageTracker

	scrolls []Command // pending Scroll commands, in order
	cursors int       // number of markers added by AddCursor
}

// New returns a Scope with the given configuration and an empty widget.
// Call Resize to give it a size.
func New(cfg Config) (*Scope, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := NewGridCache(cfg.Horizontal, cfg.Vertical, cfg.TickLength)
	s := &Scope{
		cfg:     cfg,
		vp:      NewViewport(cfg.Maximum, image.Point{}),
		grid:    grid,
		planner: NewPlanner(grid, cfg.Horizontal, cfg.Vertical, cfg.TickLength),
	}
	return s, nil
}

// Resize sets the widget size. The plot area, grid cache and marker
// geometry follow.
//
// The host is expected to keep the widget contents across a resize. If
// the viewport keeps its position, the part of the widget up to the
// smaller of the old and new plot areas is left alone; only the area
// right of and below it, and the markers whose geometry changed, are
// repainted. Otherwise the whole widget is repainted.
func (s *Scope) Resize(size image.Point) {
	oldLayout, oldCorner := s.layout, s.vp.Current.Min

	s.layout = NewLayout(size, s.cfg.Margins)
	plot := s.layout.Plot.Size()
	s.vp.Resize(plot)
	s.grid.Resize(plot)
	old := s.markers.Update(&s.vp, s.layout)

	w := s.layout.Widget
	s.damage.SetBounds(w)
	if len(s.scrolls) > 0 || s.vp.Current.Min != oldCorner || oldLayout.Widget.Empty() {
		// Pending scrolls refer to the old pixels, which are all repainted.
		s.scrolls = s.scrolls[:0]
		s.damage.InvalidateAll()
		return
	}

	keep := image.Point{
		X: min(oldLayout.Plot.Max.X, s.layout.Plot.Max.X),
		Y: min(oldLayout.Plot.Max.Y, s.layout.Plot.Max.Y),
	}
	s.damage.Invalidate(image.Rect(keep.X, w.Min.Y, w.Max.X, w.Max.Y))
	s.damage.Invalidate(image.Rect(w.Min.X, keep.Y, keep.X, w.Max.Y))
	for i, m := range s.markers.All() {
		s.damage.MarkerMoved(old[i], m.Geometry)
	}
}

// Pan moves the viewport by delta. If the move would leave the maximum
// window, nothing happens and Pan returns false.
//
// On success the plot area is scrolled rather than repainted: only the
// uncovered strips and markers whose appearance changed are damaged.
func (s *Scope) Pan(delta image.Point) bool {
	if !s.vp.Pan(delta) {
		return false
	}

	if delta.X != 0 {
		r := s.layout.HorizontalScroll(s.cfg.TickLength)
		shift := image.Pt(-delta.X, 0)
		s.scrolls = append(s.scrolls, Scroll{Rect: r, Delta: shift})
		s.damage.Scrolled(r, shift)
	}
	if delta.Y != 0 {
		r := s.layout.VerticalScroll(s.cfg.TickLength)
		shift := image.Pt(0, -delta.Y)
		s.scrolls = append(s.scrolls, Scroll{Rect: r, Delta: shift})
		s.damage.Scrolled(r, shift)
	}

	old := s.markers.Update(&s.vp, s.layout)
	for i, m := range s.markers.All() {
		s.damage.MarkerPanned(m.Edge.Axis(), old[i], m.Geometry, delta)
	}
	return true
}

// AddMarker adds m to the view and returns its index.
func (s *Scope) AddMarker(m Marker) int {
	mm := &m
	mm.Geometry, _ = ComputeGeometry(mm, &s.vp, s.layout)
	s.damage.Invalidate(mm.Sensitive)
	return s.markers.Add(mm)
}

// AddCursor adds a cursor on edge e with the default settings from the
// configuration. Consecutive cursors get increasing default positions and
// dock positions, so that docked cursors do not overlap.
func (s *Scope) AddCursor(e Edge) int {
	n := s.cursors
	s.cursors++
	c := s.cfg
	return s.AddMarker(Marker{
		Position:      c.CursorPositionBase + n*c.CursorPositionIncrement,
		Edge:          e,
		Deadzone:      c.CursorDeadzone,
		Ceiling:       c.CursorCeiling,
		Active:        true,
		Dock:          Extent{Along: c.CursorDockBase + n*c.CursorDockIncrement, Across: c.CursorCeiling},
		FloatingGlyph: c.FloatingGlyph,
		DockedGlyph:   c.DockedGlyph,
		PointerSlop:   c.PointerSlop,
	})
}

// Marker returns the i-th marker. The returned value is a copy.
func (s *Scope) Marker(i int) Marker {
	return *s.markers.At(i)
}

// NumMarkers returns the number of markers.
func (s *Scope) NumMarkers() int {
	return s.markers.Len()
}

// MoveMarker sets the logical position of marker i.
func (s *Scope) MoveMarker(i, position int) {
	m := s.markers.At(i)
	old := m.Geometry
	m.Position = position
	m.Geometry, _ = ComputeGeometry(m, &s.vp, s.layout)
	s.damage.MarkerMoved(old, m.Geometry)
}

// DragMarker moves marker i by delta pixels along its axis.
// Dragging a docked marker moves its logical position all the same.
func (s *Scope) DragMarker(i int, delta image.Point) {
	m := s.markers.At(i)
	s.MoveMarker(i, m.Position+m.Edge.Axis().pick(delta))
}

// SetMarkerActive shows or hides marker i.
func (s *Scope) SetMarkerActive(i int, active bool) {
	m := s.markers.At(i)
	if m.Active == active {
		return
	}
	m.Active = active
	s.damage.Invalidate(m.Sensitive)
}

// MarkerAt returns the index of the active marker whose sensitive region
// contains the widget position p.
func (s *Scope) MarkerAt(p image.Point) (int, bool) {
	return s.markers.HitTest(p)
}

// Viewport returns the current viewport.
func (s *Scope) Viewport() Viewport {
	return s.vp
}

// Layout returns the current widget layout.
func (s *Scope) Layout() Layout {
	return s.layout
}

// Grid returns the grid cache. It must not be modified.
func (s *Scope) Grid() *GridCache {
	return s.grid
}

// Invalidate marks a widget region for repainting, for example after the
// host lost the window contents.
func (s *Scope) Invalidate(r image.Rectangle) {
	s.damage.Invalidate(r)
}

// Frame returns everything which changed since the previous frame: first
// the pending scroll operations, then the commands repainting the damaged
// regions. The view is clean afterwards.
func (s *Scope) Frame() Frame {
	damage := s.damage.Take()
	cmds := append([]Command(nil), s.scrolls...)
	s.scrolls = s.scrolls[:0]
	cmds = append(cmds, s.planner.Plan(s.layout, &s.vp, &s.markers, damage)...)
	return Frame{Commands: cmds, Damage: damage}
}

// KeyDelta maps the pan keys W, A, S and D to a viewport delta.
func KeyDelta(key rune) (image.Point, bool) {
	switch key {
	case 'w', 'W':
		return image.Pt(0, 1), true
	case 's', 'S':
		return image.Pt(0, -1), true
	case 'a', 'A':
		return image.Pt(1, 0), true
	case 'd', 'D':
		return image.Pt(-1, 0), true
	}
	return image.Point{}, false
}
