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
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/scope"
)

// Palette maps inks to gray levels.
type Palette [scope.InkMarker + 1]color.Gray

// DefaultPalette draws dark grid and markers on a white background.
var DefaultPalette = Palette{
	scope.InkBackground: {Y: 0xff},
	scope.InkBorder:     {Y: 0x00},
	scope.InkGrid:       {Y: 0x60},
	scope.InkTick:       {Y: 0x30},
	scope.InkMarker:     {Y: 0x00},
}

// Renderer executes scope frames on a grayscale image.
//
// Apart from Scroll commands, drawing is restricted to the damaged region
// of the frame. This makes the result of an incremental update identical
// to a full repaint of the same view.
type Renderer struct {
	Dst     *image.Gray
	Glyphs  scope.GlyphStore
	Palette Palette

	r      *Rasteriser
	region *image.Alpha // the damage of the current frame
}

// NewRenderer returns a renderer drawing into dst.
// If glyphs is nil, markers are drawn without glyphs.
func NewRenderer(dst *image.Gray, glyphs scope.GlyphStore) *Renderer {
	return &Renderer{
		Dst:     dst,
		Glyphs:  glyphs,
		Palette: DefaultPalette,
		r:       NewRasteriser(rect.Rect{}),
		region:  image.NewAlpha(dst.Bounds()),
	}
}

// Render executes the commands of f in order.
func (rd *Renderer) Render(f scope.Frame) {
	clear(rd.region.Pix)
	for _, r := range f.Damage {
		draw.Draw(rd.region, r, image.Opaque, image.Point{}, draw.Src)
	}

	for _, c := range f.Commands {
		rd.execute(c)
	}
}

func (rd *Renderer) execute(c scope.Command) {
	switch c := c.(type) {
	case scope.Scroll:
		rd.scroll(c.Rect, c.Delta)

	case scope.FillRect:
		src := image.NewUniform(rd.Palette[c.Ink])
		draw.DrawMask(rd.Dst, c.Rect, src, image.Point{}, rd.region, c.Rect.Min, draw.Over)

	case scope.DrawPoints:
		ink := rd.Palette[c.Ink]
		clip := c.Clip.Intersect(rd.Dst.Bounds())
		for _, p := range c.Points {
			q := scope.Apply(c.Transform, p)
			if q.In(clip) && rd.damaged(q.X, q.Y) {
				rd.Dst.SetGray(q.X, q.Y, ink)
			}
		}

	case scope.DrawLines:
		rd.stroke(segments(c.Lines), c.Transform, c.Clip, rd.Palette[c.Ink])

	case scope.DrawLine:
		rd.stroke(segments([]scope.Segment{c.Line}), matrix.Identity, rd.Dst.Bounds(), rd.Palette[c.Ink])

	case scope.DrawImage:
		rd.drawGlyph(c.Glyph, c.Rect)
	}
}

// scroll moves the pixels inside r by delta.
func (rd *Renderer) scroll(r image.Rectangle, delta image.Point) {
	r = r.Intersect(rd.Dst.Bounds())
	target := r.Intersect(r.Add(delta))
	if target.Empty() {
		return
	}
	source := target.Sub(delta)

	tmp := image.NewGray(source)
	draw.Draw(tmp, source, rd.Dst, source.Min, draw.Src)
	draw.Draw(rd.Dst, target, tmp, source.Min, draw.Src)
}

// stroke draws one-pixel wide lines through the centres of the end point
// pixels. Square caps make the lines cover both end pixels exactly.
func (rd *Renderer) stroke(p path.Path, m matrix.Matrix, clip image.Rectangle, ink color.Gray) {
	clip = clip.Intersect(rd.Dst.Bounds())
	if clip.Empty() {
		return
	}
	rd.r.Reset(rect.Rect{
		LLx: float64(clip.Min.X),
		LLy: float64(clip.Min.Y),
		URx: float64(clip.Max.X),
		URy: float64(clip.Max.Y),
	})
	rd.r.CTM = m
	rd.r.Cap = graphics.LineCapSquare
	rd.r.Stroke(p, func(y, xMin int, coverage []float32) {
		for i, c := range coverage {
			x := xMin + i
			if !rd.damaged(x, y) {
				continue
			}
			old := float32(rd.Dst.GrayAt(x, y).Y)
			v := old*(1-c) + float32(ink.Y)*c
			rd.Dst.SetGray(x, y, color.Gray{Y: uint8(v + 0.5)})
		}
	})
}

// drawGlyph composites a glyph in marker ink into r.
func (rd *Renderer) drawGlyph(id scope.GlyphID, r image.Rectangle) {
	if rd.Glyphs == nil {
		return
	}
	g := rd.Glyphs.Glyph(id)
	off := g.Bounds().Min.Sub(r.Min)

	mask := image.NewAlpha(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !image.Pt(x, y).In(rd.Dst.Bounds()) || !rd.damaged(x, y) {
				continue
			}
			a := color.AlphaModel.Convert(g.At(x+off.X, y+off.Y)).(color.Alpha)
			mask.SetAlpha(x, y, a)
		}
	}
	src := image.NewUniform(rd.Palette[scope.InkMarker])
	draw.DrawMask(rd.Dst, r, src, image.Point{}, mask, r.Min, draw.Over)
}

func (rd *Renderer) damaged(x, y int) bool {
	return rd.region.AlphaAt(x, y).A != 0
}

// segments returns a path with one subpath per segment, joining the
// pixel centres.
func segments(lines []scope.Segment) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, s := range lines {
			if !yield(path.CmdMoveTo, []vec.Vec2{centre(s.A)}) {
				return
			}
			if !yield(path.CmdLineTo, []vec.Vec2{centre(s.B)}) {
				return
			}
		}
	}
}

func centre(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X) + 0.5, Y: float64(p.Y) + 0.5}
}
