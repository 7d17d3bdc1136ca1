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
	"maps"
	"testing"
)

type testView struct {
	cfg    Config
	layout Layout
	vp     *Viewport
	grid   *GridCache
}

func newTestView(pan image.Point) *testView {
	cfg := DefaultConfig()
	l := NewLayout(image.Pt(800, 600), cfg.Margins)
	vp := NewViewport(cfg.Maximum, l.Plot.Size())
	vp.Pan(pan)
	grid := NewGridCache(cfg.Horizontal, cfg.Vertical, cfg.TickLength)
	grid.Resize(l.Plot.Size())
	return &testView{cfg: cfg, layout: l, vp: &vp, grid: grid}
}

func (v *testView) planner(order batchOrder) *Planner {
	p := NewPlanner(v.grid, v.cfg.Horizontal, v.cfg.Vertical, v.cfg.TickLength)
	p.order = order
	return p
}

// dotPixels returns the widget pixels set by DrawPoints commands, and the
// number of such commands.
func dotPixels(cmds []Command) (map[image.Point]bool, int) {
	res := make(map[image.Point]bool)
	n := 0
	for _, c := range cmds {
		dp, ok := c.(DrawPoints)
		if !ok {
			continue
		}
		n++
		for _, p := range dp.Points {
			q := Apply(dp.Transform, p)
			if q.In(dp.Clip) {
				res[q] = true
			}
		}
	}
	return res, n
}

func TestBatchOrdersAgree(t *testing.T) {
	v := newTestView(image.Pt(7, 13))
	rects := []image.Rectangle{
		v.layout.Widget,
		v.layout.Plot,
		image.Rect(31, 21, 779, 121),
		image.Rect(31, 21, 131, 579),
		image.Rect(100, 100, 101, 101),
		image.Rect(200, 50, 437, 333),
	}
	for _, r := range rects {
		damage := []image.Rectangle{r}
		rows, _ := dotPixels(v.planner(orderRows).Plan(v.layout, v.vp, nil, damage))
		cols, _ := dotPixels(v.planner(orderColumns).Plan(v.layout, v.vp, nil, damage))
		if !maps.Equal(rows, cols) {
			t.Errorf("%v: rows give %d pixels, columns %d", r, len(rows), len(cols))
		}
	}
}

func TestBatchOrderHeuristic(t *testing.T) {
	v := newTestView(image.Point{})
	for _, r := range []image.Rectangle{
		image.Rect(31, 21, 779, 121), // wide
		image.Rect(31, 21, 131, 579), // tall
	} {
		damage := []image.Rectangle{r}
		_, auto := dotPixels(v.planner(orderAuto).Plan(v.layout, v.vp, nil, damage))
		_, rows := dotPixels(v.planner(orderRows).Plan(v.layout, v.vp, nil, damage))
		_, cols := dotPixels(v.planner(orderColumns).Plan(v.layout, v.vp, nil, damage))
		if auto != min(rows, cols) {
			t.Errorf("%v: %d commands, rows need %d, columns %d", r, auto, rows, cols)
		}
	}
}

// TestGridDots checks that the dots cover the plot area exactly and stay
// attached to logical coordinates.
func TestGridDots(t *testing.T) {
	for _, pan := range []image.Point{{0, 0}, {7, 13}, {30, 6}, {452, 242}} {
		v := newTestView(pan)
		plan := v.planner(orderAuto).Plan(v.layout, v.vp, nil, []image.Rectangle{v.layout.Widget})
		got, _ := dotPixels(plan)

		shift := v.vp.Current.Min.Sub(v.layout.Plot.Min)
		want := make(map[image.Point]bool)
		for y := v.layout.Plot.Min.Y; y < v.layout.Plot.Max.Y; y++ {
			for x := v.layout.Plot.Min.X; x < v.layout.Plot.Max.X; x++ {
				lx, ly := x+shift.X, y+shift.Y
				if lx%6 == 0 && ly%30 == 0 || lx%30 == 0 && ly%6 == 0 {
					want[image.Pt(x, y)] = true
				}
			}
		}
		if !maps.Equal(got, want) {
			t.Errorf("pan %v: %d dots, expected %d", pan, len(got), len(want))
		}
	}
}

func TestPlanStaysInDamage(t *testing.T) {
	v := newTestView(image.Pt(11, 5))
	r := image.Rect(200, 50, 437, 333)
	plan := v.planner(orderAuto).Plan(v.layout, v.vp, nil, []image.Rectangle{r})

	if fill, ok := plan[0].(FillRect); !ok || fill.Rect != r {
		t.Fatalf("plan does not start with a background fill: %#v", plan[0])
	}
	for _, c := range plan {
		switch c := c.(type) {
		case DrawPoints:
			if !c.Clip.In(r) {
				t.Errorf("clip %v outside damage", c.Clip)
			}
		case DrawLines:
			if !c.Clip.In(r) {
				t.Errorf("clip %v outside damage", c.Clip)
			}
		case DrawLine:
			if !c.Line.Bounds().Overlaps(r) {
				t.Errorf("line %v does not touch damage", c.Line)
			}
		}
	}
}

func TestPlanMarkers(t *testing.T) {
	v := newTestView(image.Point{})
	var set MarkerSet
	set.Add(testMarker(Top, 100))
	set.Add(testMarker(Top, 3))
	hidden := testMarker(Top, 300)
	hidden.Active = false
	set.Add(hidden)
	set.Update(v.vp, v.layout)

	plan := v.planner(orderAuto).Plan(v.layout, v.vp, &set, []image.Rectangle{v.layout.Widget})
	var images []DrawImage
	pointers := 0
	for _, c := range plan {
		switch c := c.(type) {
		case DrawImage:
			images = append(images, c)
		case DrawLine:
			if c.Ink == InkMarker {
				pointers++
			}
		}
	}
	if len(images) != 2 || pointers != 1 {
		t.Fatalf("expected 2 glyphs and 1 pointer, got %d and %d", len(images), pointers)
	}
	if images[0].Glyph != GlyphFor(Top, Floating) || images[1].Glyph != GlyphFor(Top, DockedNear) {
		t.Errorf("wrong glyphs %s, %s", images[0].Glyph, images[1].Glyph)
	}

	// damage away from all markers draws none of them
	plan = v.planner(orderAuto).Plan(v.layout, v.vp, &set, []image.Rectangle{image.Rect(400, 100, 420, 120)})
	for _, c := range plan {
		if _, ok := c.(DrawImage); ok {
			t.Errorf("unexpected glyph %v", c)
		}
	}
}

// TestPlanMirroredPointer checks that the pointer of a bottom or right
// marker is redrawn when only the plot row or column next to its mount
// edge is damaged, as after a pan exposes that strip.
func TestPlanMirroredPointer(t *testing.T) {
	v := newTestView(image.Point{})
	var set MarkerSet
	set.Add(testMarker(Bottom, 100))
	set.Add(testMarker(Right, 100))
	set.Update(v.vp, v.layout)

	plot := v.layout.Plot
	cases := []struct {
		damage image.Rectangle
		want   Segment
	}{
		{
			image.Rect(plot.Min.X, plot.Max.Y-1, plot.Max.X, plot.Max.Y),
			set.At(0).Pointer,
		},
		{
			image.Rect(plot.Max.X-1, plot.Min.Y, plot.Max.X, plot.Max.Y),
			set.At(1).Pointer,
		},
	}
	for _, c := range cases {
		plan := v.planner(orderAuto).Plan(v.layout, v.vp, &set, []image.Rectangle{c.damage})
		found := false
		for _, cmd := range plan {
			if l, ok := cmd.(DrawLine); ok && l.Ink == InkMarker && l.Line == c.want {
				found = true
			}
		}
		if !found {
			t.Errorf("damage %v: pointer %v not redrawn", c.damage, c.want)
		}
	}
}

func TestCeilFloorMultiple(t *testing.T) {
	cases := []struct{ x, m, ceil, floor int }{
		{0, 6, 0, 0},
		{1, 6, 6, 0},
		{6, 6, 6, 6},
		{7, 6, 12, 6},
		{-1, 6, 0, -6},
		{-6, 6, -6, -6},
		{-7, 6, -6, -12},
	}
	for _, c := range cases {
		if got := ceilMultiple(c.x, c.m); got != c.ceil {
			t.Errorf("ceilMultiple(%d, %d) = %d, expected %d", c.x, c.m, got, c.ceil)
		}
		if got := floorMultiple(c.x, c.m); got != c.floor {
			t.Errorf("floorMultiple(%d, %d) = %d, expected %d", c.x, c.m, got, c.floor)
		}
	}
}
