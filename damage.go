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
)

// maxDamageRects bounds the number of pending rectangles. Beyond it, all
// pending damage is replaced by its bounding box.
const maxDamageRects = 16

// DamageTracker collects the widget regions which need to be repainted.
// Rectangles are clipped to the widget bounds; rectangles covered by an
// earlier one are dropped, and rectangles sharing a whole side are merged.
type DamageTracker struct {
	bounds image.Rectangle
	rects  []image.Rectangle
}

// SetBounds sets the widget bounds used for clipping.
// Pending damage is clipped to the new bounds.
func (d *DamageTracker) SetBounds(r image.Rectangle) {
	d.bounds = r
	pending := slices.Clone(d.rects)
	d.rects = d.rects[:0]
	for _, old := range pending {
		d.Invalidate(old)
	}
}

// Invalidate marks r as needing a repaint.
func (d *DamageTracker) Invalidate(r image.Rectangle) {
	r = r.Intersect(d.bounds)
	if r.Empty() {
		return
	}
	for _, old := range d.rects {
		if r.In(old) {
			return
		}
	}
	for {
		i := slices.IndexFunc(d.rects, func(old image.Rectangle) bool {
			return abuts(old, r)
		})
		if i < 0 {
			break
		}
		r = r.Union(d.rects[i])
		d.rects = slices.Delete(d.rects, i, i+1)
	}
	d.rects = slices.DeleteFunc(d.rects, func(old image.Rectangle) bool {
		return old.In(r)
	})
	d.rects = append(d.rects, r)

	if len(d.rects) > maxDamageRects {
		var u image.Rectangle
		for _, old := range d.rects {
			u = u.Union(old)
		}
		d.rects = append(d.rects[:0], u)
	}
}

// abuts reports whether a and b share a whole side, so that their union
// is a rectangle.
func abuts(a, b image.Rectangle) bool {
	if a.Min.Y == b.Min.Y && a.Max.Y == b.Max.Y {
		return a.Max.X == b.Min.X || b.Max.X == a.Min.X
	}
	if a.Min.X == b.Min.X && a.Max.X == b.Max.X {
		return a.Max.Y == b.Min.Y || b.Max.Y == a.Min.Y
	}
	return false
}

// InvalidateAll marks the whole widget as needing a repaint.
func (d *DamageTracker) InvalidateAll() {
	d.rects = d.rects[:0]
	d.Invalidate(d.bounds)
}

// Scrolled records that the renderer moved the contents of region by shift.
// The strips uncovered by the move are invalidated. Damage which is still
// pending inside the region moves along with the stale pixels.
func (d *DamageTracker) Scrolled(region image.Rectangle, shift image.Point) {
	region = region.Intersect(d.bounds)
	if region.Empty() || shift == (image.Point{}) {
		return
	}

	pending := slices.Clone(d.rects)
	for _, r := range pending {
		moved := r.Intersect(region).Add(shift).Intersect(region)
		d.Invalidate(moved)
	}

	for _, strip := range exposed(region, shift) {
		d.Invalidate(strip)
	}
}

// exposed returns the parts of region which are not covered by
// region.Add(shift).
func exposed(region image.Rectangle, shift image.Point) []image.Rectangle {
	var out []image.Rectangle
	if shift.X > 0 {
		out = append(out, image.Rect(region.Min.X, region.Min.Y,
			min(region.Min.X+shift.X, region.Max.X), region.Max.Y))
	} else if shift.X < 0 {
		out = append(out, image.Rect(max(region.Max.X+shift.X, region.Min.X),
			region.Min.Y, region.Max.X, region.Max.Y))
	}
	if shift.Y > 0 {
		out = append(out, image.Rect(region.Min.X, region.Min.Y,
			region.Max.X, min(region.Min.Y+shift.Y, region.Max.Y)))
	} else if shift.Y < 0 {
		out = append(out, image.Rect(region.Min.X,
			max(region.Max.Y+shift.Y, region.Min.Y), region.Max.X, region.Max.Y))
	}
	return out
}

// MarkerPanned invalidates what is needed to redraw a marker on axis a
// after the viewport moved by delta and its geometry changed from old to
// cur.
func (d *DamageTracker) MarkerPanned(a Axis, old, cur Geometry, delta image.Point) {
	switch {
	case old.State != cur.State:
		d.Invalidate(old.Draw)
		d.Invalidate(old.Draw.Sub(delta))
		d.Invalidate(cur.Draw)
	case cur.State == Floating && a.pick(delta) != 0:
		d.Invalidate(old.Draw)
		d.Invalidate(old.Draw.Sub(delta))
		d.Invalidate(cur.Draw) // differs from the above for diagonal pans
	}

	// The old pointer line was scrolled along with the plot area.
	if old.State != Floating && cur.State == Floating {
		d.Invalidate(cur.Sensitive)
	} else if old.State == Floating && cur.State != Floating {
		d.Invalidate(old.Sensitive)
		d.Invalidate(old.Sensitive.Sub(delta))
	}
}

// MarkerMoved invalidates the old and new area of a marker whose position
// changed without the viewport moving.
func (d *DamageTracker) MarkerMoved(old, cur Geometry) {
	if old == cur {
		return
	}
	d.Invalidate(old.Sensitive)
	d.Invalidate(cur.Sensitive)
}

// Pending returns the damage collected so far.
// The slice is only valid until the next call to a DamageTracker method.
func (d *DamageTracker) Pending() []image.Rectangle {
	return d.rects
}

// Take returns the collected damage and resets the tracker.
func (d *DamageTracker) Take() []image.Rectangle {
	out := slices.Clone(d.rects)
	d.rects = d.rects[:0]
	return out
}
