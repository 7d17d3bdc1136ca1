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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the line segments of p with the current Width and Cap.
// Every segment is outlined on its own, with a cap at both ends; where
// segments meet, the outlines overlap instead of being joined. Zero-length
// segments produce a dot for round and square caps.
//
// Coverage is delivered row by row, as for FillNonZero.
func (r *Rasteriser) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]

	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
		case path.CmdLineTo:
			r.strokeSegment(current, pts[0])
			current = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], r.strokeSegment)
			current = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], r.strokeSegment)
			current = pts[2]
		case path.CmdClose:
			if current != start {
				r.strokeSegment(current, start)
			}
			current = start
		}
	}
	r.fill(emit)
}

// strokeSegment adds the outline of the stroked segment a-b to the edge
// list. All outlines have the same orientation, so that overlapping
// outlines add up under the nonzero rule.
func (r *Rasteriser) strokeSegment(a, b vec.Vec2) {
	d := r.Width / 2

	t := b.Sub(a)
	if length := t.Length(); length >= zeroLengthThreshold {
		t = t.Mul(1 / length)
	} else if r.Cap == graphics.LineCapButt {
		return
	} else {
		t = vec.Vec2{X: 1}
	}
	n := vec.Vec2{X: -t.Y, Y: t.X}

	r.outline = r.outline[:0]
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(b, d, n.Mul(-1), math.Pi)
		r.addArc(a, d, n, math.Pi)
	case graphics.LineCapSquare:
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
		fallthrough
	default:
		r.outline = append(r.outline,
			a.Sub(n.Mul(d)), b.Sub(n.Mul(d)),
			b.Add(n.Mul(d)), a.Add(n.Mul(d)))
	}

	for i, p := range r.outline {
		r.addEdge(p, r.outline[(i+1)%len(r.outline)])
	}
}

// addArc appends points on the circular arc around center which starts in
// direction startDir and turns by sweep radians. Both end points are
// included.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius > r.Flatness {
		// the sagitta of a chord spanning angle θ is r(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	for i := 0; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}
