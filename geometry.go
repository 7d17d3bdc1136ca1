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

	"golang.org/x/exp/constraints"
)

// Axis selects one of the two screen axes.
type Axis int

const (
	Horizontal Axis = iota // x axis
	Vertical               // y axis
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// pick returns the component of p along a.
func (a Axis) pick(p image.Point) int {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// Extent is a size measured relative to a marker's axis.
// Along is the size in the direction of the axis, Across is perpendicular
// to it.
type Extent struct {
	Along, Across int
}

func (e Extent) valid() bool {
	return e.Along > 0 && e.Across > 0
}

// Segment is a line segment between two pixel positions.
// Both end points are drawn.
type Segment struct {
	A, B image.Point
}

// Add translates the segment by p.
func (s Segment) Add(p image.Point) Segment {
	return Segment{A: s.A.Add(p), B: s.B.Add(p)}
}

// Empty reports whether the segment has zero length.
func (s Segment) Empty() bool {
	return s.A == s.B
}

// Bounds returns the smallest rectangle containing all pixels of the
// segment. The end points may be given in either order.
func (s Segment) Bounds() image.Rectangle {
	r := image.Rect(s.A.X, s.A.Y, s.B.X, s.B.Y)
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}

// ceilMultiple returns the smallest multiple of m which is >= x.
// m must be positive. Negative x is rounded up too, not towards zero.
func ceilMultiple[T constraints.Integer](x, m T) T {
	r := x % m
	if r == 0 {
		return x
	}
	if r < 0 {
		return x - r
	}
	return x - r + m
}

// floorMultiple returns the largest multiple of m which is <= x.
func floorMultiple[T constraints.Integer](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return x - r
}
