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
	"image"
	"testing"
)

// checkSequence verifies the coverage invariant of one cache sequence.
func checkSequence[T any](t *testing.T, name string, s *sequence[T], step, extent int) {
	t.Helper()
	n := len(s.elems)
	for i, e := range s.elems {
		if got := s.coord(e); got != i*step {
			t.Fatalf("%s: element %d at %d, expected %d", name, i, got, i*step)
		}
	}
	last := s.coord(s.elems[n-1])
	if last < extent {
		t.Errorf("%s: last element %d below extent %d", name, last, extent)
	}
	if n > 1 && last-step >= extent {
		t.Errorf("%s: element %d before the last already covers extent %d",
			name, last-step, extent)
	}
}

func TestSequenceResize(t *testing.T) {
	const step = 6
	s := newSequence(image.Point{}, Horizontal.pick,
		func(p image.Point) image.Point { return p.Add(image.Pt(step, 0)) })

	for _, extent := range []int{0, 1, 5, 6, 7, 12, 100, 37, 36, 35, 1000, 999, 3, 0, 61} {
		before := len(s.elems)
		ops := s.resize(extent)
		after := len(s.elems)

		checkSequence(t, "dots", s, step, extent)
		if diff := after - before; ops != max(diff, -diff) {
			t.Errorf("extent %d: %d operations for length change %d -> %d",
				extent, ops, before, after)
		}
	}
}

func TestSequenceKeepsOrigin(t *testing.T) {
	s := newSequence(image.Point{}, Vertical.pick,
		func(p image.Point) image.Point { return p.Add(image.Pt(0, 30)) })
	s.resize(500)
	s.resize(0)
	if len(s.elems) != 1 || s.elems[0] != (image.Point{}) {
		t.Errorf("expected only the origin, got %v", s.elems)
	}
}

func TestSequenceResizeIsIncremental(t *testing.T) {
	s := newSequence(image.Point{}, Horizontal.pick,
		func(p image.Point) image.Point { return p.Add(image.Pt(1, 0)) })
	s.resize(10000)

	// dragging the window edge one pixel at a time
	for extent := 10001; extent < 10050; extent++ {
		if ops := s.resize(extent); ops != 1 {
			t.Fatalf("extent %d: expected 1 operation, got %d", extent, ops)
		}
	}
	for extent := 10048; extent > 10000; extent-- {
		if ops := s.resize(extent); ops != 1 {
			t.Fatalf("extent %d: expected 1 operation, got %d", extent, ops)
		}
	}
}

func TestGridCacheResize(t *testing.T) {
	h := Steps{Minor: 6, Major: 30, Ruler: 150}
	v := Steps{Minor: 5, Major: 25, Ruler: 100}
	g := NewGridCache(h, v, 2)

	for _, size := range []image.Point{{748, 558}, {749, 558}, {100, 900}, {0, 0}, {31, 7}} {
		g.Resize(size)

		checkSequence(t, "h minor", g.dots[Horizontal][Minor], h.Minor, size.X)
		checkSequence(t, "h major", g.dots[Horizontal][Major], h.Major, size.X)
		checkSequence(t, "v minor", g.dots[Vertical][Minor], v.Minor, size.Y)
		checkSequence(t, "v major", g.dots[Vertical][Major], v.Major, size.Y)
		checkSequence(t, "h ticks", g.ticks[Horizontal], h.Minor, size.X)
		checkSequence(t, "v ticks", g.ticks[Vertical], v.Minor, size.Y)
	}
}

func TestGridCacheTickShape(t *testing.T) {
	g := NewGridCache(Steps{6, 30, 150}, Steps{6, 30, 120}, 2)
	g.Resize(image.Pt(20, 20))

	for i, s := range g.Ticks(Horizontal) {
		want := Segment{A: image.Pt(6*i, 0), B: image.Pt(6*i, 2)}
		if s != want {
			t.Errorf("horizontal tick %d: expected %v, got %v", i, want, s)
		}
	}
	for i, s := range g.Ticks(Vertical) {
		want := Segment{A: image.Pt(0, 6*i), B: image.Pt(2, 6*i)}
		if s != want {
			t.Errorf("vertical tick %d: expected %v, got %v", i, want, s)
		}
	}
	for _, p := range g.Dots(Vertical, Major) {
		if p.X != 0 {
			t.Errorf("vertical dot %v off the axis", p)
		}
	}
}
