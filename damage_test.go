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
	"slices"
	"testing"
)

func newTestTracker() *DamageTracker {
	d := &DamageTracker{}
	d.SetBounds(image.Rect(0, 0, 200, 200))
	return d
}

func TestInvalidate(t *testing.T) {
	d := newTestTracker()
	d.Invalidate(image.Rect(190, 190, 250, 250)) // clipped
	d.Invalidate(image.Rect(300, 300, 310, 310)) // outside
	d.Invalidate(image.Rect(10, 10, 10, 50))     // empty
	d.Invalidate(image.Rect(10, 10, 20, 20))
	d.Invalidate(image.Rect(12, 12, 18, 18)) // contained
	d.Invalidate(image.Rect(10, 10, 20, 20)) // duplicate

	want := []image.Rectangle{
		image.Rect(190, 190, 200, 200),
		image.Rect(10, 10, 20, 20),
	}
	if got := d.Pending(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// a larger rectangle replaces the ones it covers
	d.Invalidate(image.Rect(0, 0, 100, 100))
	want = []image.Rectangle{
		image.Rect(190, 190, 200, 200),
		image.Rect(0, 0, 100, 100),
	}
	if got := d.Pending(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	d.InvalidateAll()
	if got := d.Take(); !slices.Equal(got, []image.Rectangle{image.Rect(0, 0, 200, 200)}) {
		t.Errorf("unexpected damage %v", got)
	}
	if len(d.Pending()) != 0 {
		t.Errorf("damage left after Take: %v", d.Pending())
	}
}

func TestInvalidateMerges(t *testing.T) {
	d := newTestTracker()
	d.Invalidate(image.Rect(10, 10, 20, 20))
	d.Invalidate(image.Rect(20, 10, 30, 20)) // right neighbour
	d.Invalidate(image.Rect(10, 20, 30, 25)) // below both
	d.Invalidate(image.Rect(40, 10, 50, 15)) // apart

	want := []image.Rectangle{
		image.Rect(10, 10, 30, 25),
		image.Rect(40, 10, 50, 15),
	}
	if got := d.Pending(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestSetBoundsClipsPending(t *testing.T) {
	d := newTestTracker()
	d.Invalidate(image.Rect(50, 50, 150, 150))
	d.Invalidate(image.Rect(120, 0, 130, 10))
	d.SetBounds(image.Rect(0, 0, 100, 100))

	want := []image.Rectangle{image.Rect(50, 50, 100, 100)}
	if got := d.Pending(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// TestDamageBounded pans diagonally many times without taking a frame,
// as happens while a pan key auto-repeats.
func TestDamageBounded(t *testing.T) {
	d := &DamageTracker{}
	d.SetBounds(image.Rect(0, 0, 800, 600))
	d.Invalidate(image.Rect(300, 200, 320, 220))
	h := image.Rect(31, 19, 779, 581)
	v := image.Rect(29, 21, 781, 579)

	for i := range 24 {
		d.Scrolled(h, image.Pt(-1, 0))
		d.Scrolled(v, image.Pt(0, -1))
		if n := len(d.Pending()); n > maxDamageRects {
			t.Fatalf("pan %d: %d pending rectangles", i, n)
		}
	}

	for _, strip := range []image.Rectangle{
		image.Rect(778, 19, 779, 581),
		image.Rect(29, 578, 781, 579),
		image.Rect(300, 200, 320, 220),
	} {
		covered := false
		for _, r := range d.Pending() {
			if strip.In(r) {
				covered = true
			}
		}
		if !covered {
			t.Errorf("%v not damaged: %v", strip, d.Pending())
		}
	}
}

func TestScrolled(t *testing.T) {
	d := newTestTracker()
	d.Invalidate(image.Rect(10, 10, 20, 20))
	d.Scrolled(image.Rect(0, 0, 100, 100), image.Pt(-5, 0))

	want := []image.Rectangle{
		image.Rect(10, 10, 20, 20),
		image.Rect(5, 10, 15, 20),
		image.Rect(95, 0, 100, 100),
	}
	if got := d.Take(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestExposed(t *testing.T) {
	region := image.Rect(10, 20, 110, 70)
	cases := []struct {
		shift image.Point
		want  []image.Rectangle
	}{
		{image.Pt(3, 0), []image.Rectangle{image.Rect(10, 20, 13, 70)}},
		{image.Pt(-3, 0), []image.Rectangle{image.Rect(107, 20, 110, 70)}},
		{image.Pt(0, 4), []image.Rectangle{image.Rect(10, 20, 110, 24)}},
		{image.Pt(0, -4), []image.Rectangle{image.Rect(10, 66, 110, 70)}},
		{image.Pt(500, 0), []image.Rectangle{region}},
		{image.Pt(1, -1), []image.Rectangle{
			image.Rect(10, 20, 11, 70),
			image.Rect(10, 69, 110, 70),
		}},
	}
	for _, c := range cases {
		if got := exposed(region, c.shift); !slices.Equal(got, c.want) {
			t.Errorf("shift %v: expected %v, got %v", c.shift, c.want, got)
		}
	}
}

func TestMarkerPanned(t *testing.T) {
	floating := Geometry{
		State:     Floating,
		Draw:      image.Rect(10, 0, 19, 8),
		Sensitive: image.Rect(10, 0, 19, 150),
	}
	moved := floating
	moved.Draw = floating.Draw.Sub(image.Pt(2, 0))
	moved.Sensitive = floating.Sensitive.Sub(image.Pt(2, 0))
	docked := Geometry{
		State:     DockedNear,
		Draw:      image.Rect(34, 1, 42, 10),
		Sensitive: image.Rect(34, 1, 42, 10),
	}

	t.Run("cross-axis pan", func(t *testing.T) {
		d := newTestTracker()
		d.MarkerPanned(Horizontal, floating, floating, image.Pt(0, 1))
		if len(d.Pending()) != 0 {
			t.Errorf("unexpected damage %v", d.Pending())
		}
	})

	t.Run("floating", func(t *testing.T) {
		d := newTestTracker()
		d.MarkerPanned(Horizontal, floating, moved, image.Pt(2, 0))
		want := []image.Rectangle{image.Rect(10, 0, 19, 8), image.Rect(8, 0, 17, 8)}
		if got := d.Pending(); !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("docked unchanged", func(t *testing.T) {
		d := newTestTracker()
		d.MarkerPanned(Horizontal, docked, docked, image.Pt(1, 0))
		if len(d.Pending()) != 0 {
			t.Errorf("unexpected damage %v", d.Pending())
		}
	})

	t.Run("undock", func(t *testing.T) {
		d := newTestTracker()
		d.MarkerPanned(Horizontal, docked, floating, image.Pt(1, 0))
		want := []image.Rectangle{
			image.Rect(34, 1, 42, 10),
			image.Rect(33, 1, 41, 10),
			floating.Sensitive,
		}
		if got := d.Pending(); !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("dock", func(t *testing.T) {
		d := newTestTracker()
		d.MarkerPanned(Horizontal, floating, docked, image.Pt(1, 0))
		want := []image.Rectangle{
			image.Rect(34, 1, 42, 10),
			floating.Sensitive,
			image.Rect(9, 0, 18, 150),
		}
		if got := d.Pending(); !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}

func TestMarkerMoved(t *testing.T) {
	d := newTestTracker()
	g := Geometry{Sensitive: image.Rect(10, 10, 20, 20)}
	d.MarkerMoved(g, g)
	if len(d.Pending()) != 0 {
		t.Fatalf("unexpected damage %v", d.Pending())
	}

	h := Geometry{Sensitive: image.Rect(30, 10, 40, 20)}
	d.MarkerMoved(g, h)
	want := []image.Rectangle{g.Sensitive, h.Sensitive}
	if got := d.Pending(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
