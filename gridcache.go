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

// sequence is an ordered list of grid elements along one axis.
// Element i sits at coordinate i*step. The first element is the origin and
// is never removed.
type sequence[T any] struct {
	elems []T
	coord func(T) int // position of an element along the axis
	next  func(T) T   // the element one step further out
}

func newSequence[T any](origin T, coord func(T) int, next func(T) T) *sequence[T] {
	return &sequence[T]{
		elems: []T{origin},
		coord: coord,
		next:  next,
	}
}

// resize grows or shrinks the sequence until it just covers [0, extent]:
// the last element reaches the extent and the one before it does not.
// Only the tail is touched, so the cost is proportional to the change in
// length. The return value is the number of elements added or removed.
//
// The backing array never shrinks, so repeated resizing while a window is
// dragged does not allocate.
func (s *sequence[T]) resize(extent int) int {
	ops := 0
	for n := len(s.elems); n > 1 && s.coord(s.elems[n-2]) >= extent; n-- {
		s.elems = s.elems[:n-1]
		ops++
	}
	for s.coord(s.elems[len(s.elems)-1]) < extent {
		s.elems = append(s.elems, s.next(s.elems[len(s.elems)-1]))
		ops++
	}
	return ops
}

// Granularity selects one of the dot grids.
type Granularity int

const (
	Minor Granularity = iota
	Major
)

// GridCache holds the pre-computed positions of grid dots and tick
// segments, starting at the origin and covering the plot area.
//
// Horizontal sequences step along the x axis, vertical ones along the y
// axis. Horizontal tick segments are short vertical lines spaced by the
// horizontal minor step; vertical tick segments are short horizontal lines
// spaced by the vertical minor step.
//
// The slices returned by the accessors are owned by the cache and are only
// valid until the next call to Resize.
type GridCache struct {
	dots  [2][2]*sequence[image.Point] // indexed by Axis, Granularity
	ticks [2]*sequence[Segment]        // indexed by Axis
	steps [2]Steps
}

// NewGridCache returns a cache seeded with the origin elements.
// Call Resize before use.
func NewGridCache(horizontal, vertical Steps, tickLength int) *GridCache {
	g := &GridCache{steps: [2]Steps{horizontal, vertical}}

	for _, a := range []Axis{Horizontal, Vertical} {
		for _, gran := range []Granularity{Minor, Major} {
			step := g.step(a, gran)
			g.dots[a][gran] = newSequence(image.Point{}, a.pick,
				func(p image.Point) image.Point { return p.Add(step) })
		}
	}

	hStep := g.step(Horizontal, Minor)
	g.ticks[Horizontal] = newSequence(
		Segment{B: image.Pt(0, tickLength)},
		func(s Segment) int { return s.A.X },
		func(s Segment) Segment { return s.Add(hStep) })
	vStep := g.step(Vertical, Minor)
	g.ticks[Vertical] = newSequence(
		Segment{B: image.Pt(tickLength, 0)},
		func(s Segment) int { return s.A.Y },
		func(s Segment) Segment { return s.Add(vStep) })

	return g
}

// step returns the displacement between neighbouring dots.
func (g *GridCache) step(a Axis, gran Granularity) image.Point {
	d := g.steps[a].Minor
	if gran == Major {
		d = g.steps[a].Major
	}
	if a == Horizontal {
		return image.Pt(d, 0)
	}
	return image.Pt(0, d)
}

// Resize adjusts all sequences to the plot-area size and returns the total
// number of elements added or removed.
func (g *GridCache) Resize(size image.Point) int {
	ops := 0
	for _, a := range []Axis{Horizontal, Vertical} {
		extent := max(a.pick(size), 0)
		ops += g.dots[a][Minor].resize(extent)
		ops += g.dots[a][Major].resize(extent)
		ops += g.ticks[a].resize(extent)
	}
	return ops
}

// Dots returns the dot positions along axis a.
func (g *GridCache) Dots(a Axis, gran Granularity) []image.Point {
	return g.dots[a][gran].elems
}

// Ticks returns the tick segments along axis a.
func (g *GridCache) Ticks(a Axis) []Segment {
	return g.ticks[a].elems
}
