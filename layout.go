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

// Layout gives the widget bounds and the plot area inside them, in widget
// coordinates.
type Layout struct {
	Widget image.Rectangle
	Plot   image.Rectangle
}

// NewLayout returns the layout for a widget of the given size.
// If the margins do not fit, the plot area is empty.
func NewLayout(size image.Point, m Margins) Layout {
	w := image.Rectangle{Max: size}
	plot := image.Rectangle{
		Min: image.Pt(m.Left, m.Top),
		Max: image.Pt(size.X-m.Right, size.Y-m.Bottom),
	}
	plot.Max.X = max(plot.Max.X, plot.Min.X)
	plot.Max.Y = max(plot.Max.Y, plot.Min.Y)
	return Layout{Widget: w, Plot: plot}
}

// HorizontalScroll returns the region which moves when the viewport pans
// horizontally: the plot area together with the tick rows above and below.
func (l Layout) HorizontalScroll(tickLength int) image.Rectangle {
	p := l.Plot
	return image.Rect(p.Min.X, p.Min.Y-tickLength, p.Max.X, p.Max.Y+tickLength)
}

// VerticalScroll returns the region which moves when the viewport pans
// vertically: the plot area together with the tick columns on both sides.
func (l Layout) VerticalScroll(tickLength int) image.Rectangle {
	p := l.Plot
	return image.Rect(p.Min.X-tickLength, p.Min.Y, p.Max.X+tickLength, p.Max.Y)
}

// Border returns the area covered by the grid and the tick marks.
// The frame line is drawn one pixel outside of it.
func (l Layout) Border(tickLength int) image.Rectangle {
	return l.HorizontalScroll(tickLength).Union(l.VerticalScroll(tickLength))
}

// frameLines returns the four sides of the frame drawn around border.
func frameLines(border image.Rectangle) [4]Segment {
	x0, y0 := border.Min.X-1, border.Min.Y-1
	x1, y1 := border.Max.X, border.Max.Y
	return [4]Segment{
		{A: image.Pt(x0, y0), B: image.Pt(x1, y0)},
		{A: image.Pt(x1, y0), B: image.Pt(x1, y1)},
		{A: image.Pt(x0, y1), B: image.Pt(x1, y1)},
		{A: image.Pt(x0, y0), B: image.Pt(x0, y1)},
	}
}
