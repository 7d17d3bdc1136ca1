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

// batchOrder selects how dot grids are batched into commands.
type batchOrder int

const (
	orderAuto    batchOrder = iota // rows for wide areas, columns for tall ones
	orderRows                      // one command per grid row
	orderColumns                   // one command per grid column
)

// Planner turns damaged regions into drawing commands.
//
// The grid is drawn in viewport coordinates and mapped to the widget by the
// command transforms. Dots sit on multiples of their step; ruler ticks are
// centred on multiples of the ruler step.
type Planner struct {
	grid *GridCache
	h, v Steps
	tick int

	order batchOrder
}

// NewPlanner returns a planner drawing from the given grid cache.
// The steps must match the ones the cache was built with.
func NewPlanner(grid *GridCache, horizontal, vertical Steps, tickLength int) *Planner {
	return &Planner{
		grid: grid,
		h:    horizontal,
		v:    vertical,
		tick: tickLength,
	}
}

// Plan returns the commands which repaint the damaged rectangles.
// Damage is given in widget coordinates.
func (p *Planner) Plan(l Layout, vp *Viewport, markers *MarkerSet, damage []image.Rectangle) []Command {
	var cmds []Command
	border := l.Border(p.tick)

	for _, r := range damage {
		cmds = append(cmds, FillRect{Rect: r, Ink: InkBackground})
		cmds = p.planGrid(cmds, l, vp, r)
	}

	for _, line := range frameLines(border) {
		if touches(line.Bounds(), damage) {
			cmds = append(cmds, DrawLine{Line: line, Ink: InkBorder})
		}
	}

	if markers != nil {
		for _, m := range markers.All() {
			if !m.Active {
				continue
			}
			if m.State == Floating && touches(m.Pointer.Bounds(), damage) {
				cmds = append(cmds, DrawLine{Line: m.Pointer, Ink: InkMarker})
			}
			if touches(m.Draw, damage) {
				cmds = append(cmds, DrawImage{Glyph: m.Glyph, Rect: m.Draw})
			}
		}
	}
	return cmds
}

// planGrid appends the commands for the grid dots and ticks inside r.
func (p *Planner) planGrid(cmds []Command, l Layout, vp *Viewport, r image.Rectangle) []Command {
	border := l.Border(p.tick)
	clip := r.Intersect(border)
	if clip.Empty() {
		return cmds
	}

	// viewport coordinates = widget coordinates + shift
	shift := vp.Current.Min.Sub(l.Plot.Min)
	g := p.grid

	pts := func(elems []image.Point, at image.Point) {
		cmds = append(cmds, DrawPoints{
			Points:    elems,
			Transform: translate(at.Sub(shift)),
			Clip:      clip,
			Ink:       InkGrid,
		})
	}
	lines := func(elems []Segment, at image.Point, clip image.Rectangle) {
		cmds = append(cmds, DrawLines{
			Lines:     elems,
			Transform: translate(at.Sub(shift)),
			Clip:      clip,
			Ink:       InkTick,
		})
	}
	rulers := func(elems []Segment, at image.Point) {
		lines(elems, at, r.Intersect(l.Plot))
	}
	tickRow := func(elems []Segment, at image.Point) {
		lines(elems, at, clip)
	}

	vr := r.Intersect(l.Plot).Add(shift)
	if !vr.Empty() {
		br := vr.Max.Sub(image.Pt(1, 1))

		hMinor := ceilMultiple(vr.Min.X, p.h.Minor)
		vMinor := ceilMultiple(vr.Min.Y, p.v.Minor)
		hMajor := ceilMultiple(vr.Min.X, p.h.Major)
		vMajor := ceilMultiple(vr.Min.Y, p.v.Major)
		hRuler := floorMultiple(vr.Min.X, p.h.Ruler) - p.tick/2
		vRuler := floorMultiple(vr.Min.Y, p.v.Ruler) - p.tick/2

		// Both orders produce the same pixels. Rows need one command per
		// grid row, columns one per grid column, so the longer side of the
		// area is drawn by each command.
		order := p.order
		if order == orderAuto {
			order = orderColumns
			if vr.Dx() > vr.Dy() {
				order = orderRows
			}
		}
		if order == orderRows {
			batch(image.Pt(hMinor, vMajor), Vertical, p.v.Major, br,
				g.Dots(Horizontal, Minor), p.h.Minor, pts)
			batch(image.Pt(hMajor, vMinor), Vertical, p.v.Minor, br,
				g.Dots(Horizontal, Major), p.h.Major, pts)
		} else {
			batch(image.Pt(hMinor, vMajor), Horizontal, p.h.Minor, br,
				g.Dots(Vertical, Major), p.v.Major, pts)
			batch(image.Pt(hMajor, vMinor), Horizontal, p.h.Major, br,
				g.Dots(Vertical, Minor), p.v.Minor, pts)
		}

		// Rulers are columns and rows of ticks across the plot area. They
		// are clipped to the plot area, which scrolls on both axes.
		batch(image.Pt(hRuler, vMinor), Horizontal, p.h.Ruler, br,
			g.Ticks(Vertical), p.v.Minor, rulers)
		batch(image.Pt(hMinor, vRuler), Vertical, p.v.Ruler, br,
			g.Ticks(Horizontal), p.h.Minor, rulers)
	}

	// Tick rows just outside the plot area. They move with the viewport
	// along their own axis only.
	tr := clip.Add(shift)
	cur := vp.Current
	if lo, hi := max(tr.Min.X, cur.Min.X), min(tr.Max.X, cur.Max.X); lo < hi {
		start := ceilMultiple(lo, p.h.Minor)
		if n := countSteps(start, hi-1, p.h.Minor); n > 0 {
			ticks := g.Ticks(Horizontal)
			ticks = ticks[:min(n, len(ticks))]
			tickRow(ticks, image.Pt(start, cur.Min.Y-1-p.tick))
			tickRow(ticks, image.Pt(start, cur.Max.Y))
		}
	}
	if lo, hi := max(tr.Min.Y, cur.Min.Y), min(tr.Max.Y, cur.Max.Y); lo < hi {
		start := ceilMultiple(lo, p.v.Minor)
		if n := countSteps(start, hi-1, p.v.Minor); n > 0 {
			ticks := g.Ticks(Vertical)
			ticks = ticks[:min(n, len(ticks))]
			tickRow(ticks, image.Pt(cur.Min.X-1-p.tick, start))
			tickRow(ticks, image.Pt(cur.Max.X, start))
		}
	}
	return cmds
}

// batch draws a grid in strips. Starting at offset, it calls emit once per
// strip, advancing by step along the given axis while the strip start is
// not beyond last. Each strip draws the prefix of cache which covers the
// range up to last on the other axis; cache elements are dist apart.
func batch[T any](offset image.Point, along Axis, step int, last image.Point,
	cache []T, dist int, emit func([]T, image.Point)) {

	other := Vertical
	d := image.Pt(step, 0)
	if along == Vertical {
		other = Horizontal
		d = image.Pt(0, step)
	}

	n := countSteps(other.pick(offset), other.pick(last), dist)
	if n <= 0 {
		return
	}
	elems := cache[:min(n, len(cache))]
	for ; along.pick(offset) <= along.pick(last); offset = offset.Add(d) {
		emit(elems, offset)
	}
}

// countSteps returns the number of positions start, start+dist, ... which
// are <= last.
func countSteps(start, last, dist int) int {
	if last < start {
		return 0
	}
	return (last-start)/dist + 1
}

// touches reports whether r overlaps any of the rectangles.
func touches(r image.Rectangle, rects []image.Rectangle) bool {
	for _, d := range rects {
		if r.Overlaps(d) {
			return true
		}
	}
	return false
}
