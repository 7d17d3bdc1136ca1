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

// Viewport is the logical window shown in the plot area.
//
// Current always has the size of the plot area. Its top-left corner is the
// pan offset. Maximum bounds all legal positions of Current.
type Viewport struct {
	Current image.Rectangle
	Maximum image.Rectangle
}

// NewViewport returns a viewport of the given size at the top-left corner of
// maximum.
func NewViewport(maximum image.Rectangle, size image.Point) Viewport {
	v := Viewport{
		Current: image.Rectangle{Min: maximum.Min, Max: maximum.Min},
		Maximum: maximum,
	}
	v.Resize(size)
	return v
}

// Pan moves the current window by delta. The move is applied only if the
// proposed window lies inside Maximum; otherwise the viewport is unchanged
// and Pan returns false. There is no partial pan.
func (v *Viewport) Pan(delta image.Point) bool {
	proposed := v.Current.Add(delta)
	if !contains(v.Maximum, proposed) {
		return false
	}
	v.Current = proposed
	return true
}

// Resize sets the size of the current window, keeping its top-left corner.
// If the resized window would leave Maximum, the corner is pulled inward by
// the smallest amount that restores containment. Along an axis where size
// exceeds Maximum, the window is pinned to Maximum.Min and overhangs on the
// far side; see Fits.
func (v *Viewport) Resize(size image.Point) {
	size.X = max(size.X, 0)
	size.Y = max(size.Y, 0)

	corner := image.Point{
		X: pullInside(v.Current.Min.X, size.X, v.Maximum.Min.X, v.Maximum.Max.X),
		Y: pullInside(v.Current.Min.Y, size.Y, v.Maximum.Min.Y, v.Maximum.Max.Y),
	}
	v.Current = image.Rectangle{Min: corner, Max: corner.Add(size)}
}

// Fits reports whether Maximum contains the current window.
// This only fails after a resize beyond the size of Maximum.
func (v Viewport) Fits() bool {
	return contains(v.Maximum, v.Current)
}

// Near returns the first visible logical coordinate on the given axis.
func (v Viewport) Near(a Axis) int {
	if a == Horizontal {
		return v.Current.Min.X
	}
	return v.Current.Min.Y
}

// Far returns the last visible logical coordinate on the given axis.
func (v Viewport) Far(a Axis) int {
	if a == Horizontal {
		return v.Current.Max.X - 1
	}
	return v.Current.Max.Y - 1
}

// pullInside returns the start of an interval of length n, as close to lo0
// as possible while staying within [lo, hi).
func pullInside(lo0, n, lo, hi int) int {
	if n >= hi-lo {
		return lo
	}
	return min(max(lo0, lo), hi-n)
}

// contains reports whether inner lies inside outer.
// Unlike image.Rectangle.In, an empty inner rectangle still needs to have
// its corners inside outer.
func contains(outer, inner image.Rectangle) bool {
	return inner.Min.X >= outer.Min.X && inner.Min.Y >= outer.Min.Y &&
		inner.Max.X <= outer.Max.X && inner.Max.Y <= outer.Max.Y
}
