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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Ink selects the colour a command is drawn with.
// The mapping from inks to colours is up to the renderer.
type Ink int

const (
	InkBackground Ink = iota
	InkBorder
	InkGrid
	InkTick
	InkMarker
)

// Command is a primitive drawing operation for the renderer.
// Commands must be executed in order.
type Command interface {
	isCommand()
}

// DrawPoints draws one pixel at every point, after applying Transform.
// Only pixels inside Clip are changed.
type DrawPoints struct {
	Points    []image.Point
	Transform matrix.Matrix
	Clip      image.Rectangle
	Ink       Ink
}

// DrawLines draws every segment, including both end points, after applying
// Transform. Only pixels inside Clip are changed.
type DrawLines struct {
	Lines     []Segment
	Transform matrix.Matrix
	Clip      image.Rectangle
	Ink       Ink
}

// DrawImage draws a marker glyph into Rect.
type DrawImage struct {
	Glyph GlyphID
	Rect  image.Rectangle
}

// DrawLine draws a single segment, including both end points.
type DrawLine struct {
	Line Segment
	Ink  Ink
}

// FillRect fills a rectangle.
type FillRect struct {
	Rect image.Rectangle
	Ink  Ink
}

// Scroll moves the pixels inside Rect by Delta. Pixels moved outside Rect
// are discarded; the uncovered part of Rect is left for later commands to
// repaint.
type Scroll struct {
	Rect  image.Rectangle
	Delta image.Point
}

func (DrawPoints) isCommand() {}
func (DrawLines) isCommand() {}
func (DrawImage) isCommand() {}
func (DrawLine) isCommand() {}
func (FillRect) isCommand() {}
func (Scroll) isCommand() {}

// Frame is the output of one update pass: the commands to execute and the
// widget regions they repaint.
//
// Point and segment slices in the commands may share storage with the grid
// cache. Cache elements never change their value, so the slices stay valid.
type Frame struct {
	Commands []Command
	Damage   []image.Rectangle
}

// translate returns the matrix which moves points by p.
func translate(p image.Point) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, float64(p.X), float64(p.Y)}
}

// Apply transforms the pixel position p by m, rounding to the nearest
// pixel.
func Apply(m matrix.Matrix, p image.Point) image.Point {
	x, y := float64(p.X), float64(p.Y)
	return image.Point{
		X: int(math.Round(m[0]*x + m[2]*y + m[4])),
		Y: int(math.Round(m[1]*x + m[3]*y + m[5])),
	}
}
