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

// Command genpdf generates reference images for the scenarios.
// It draws a full repaint of the final state of every scenario into a PDF
// and renders it to PNG using Ghostscript.
package main

import (
	"fmt"
	"image"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/scope"
	"seehuhn.de/go/scope/raster"
	"seehuhn.de/go/scope/scenarios"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	cfg := scope.DefaultConfig()
	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, sc := range scenarios.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			s, err := sc.Run(cfg, nil)
			if err != nil {
				panic(err)
			}
			widget := s.Layout().Widget
			s.Invalidate(widget)

			if err := generatePDF(widget.Size(), s.Frame(), pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(size image.Point, f scope.Frame, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(size.X),
		URy: float64(size.Y),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; widget coordinates start top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(size.Y)})

	setInk := func(ink scope.Ink) {
		page.SetFillColor(color.DeviceGray(float64(raster.DefaultPalette[ink].Y) / 255))
	}

	// A full repaint only contains commands which draw whole pixels,
	// apart from the glyphs. Pixels and axis-parallel lines become
	// rectangles.
	fillRect := func(r image.Rectangle, ink scope.Ink) {
		if r.Empty() {
			return
		}
		setInk(ink)
		page.Rectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
		page.Fill()
	}
	segment := func(l scope.Segment, clip image.Rectangle, ink scope.Ink) {
		fillRect(l.Bounds().Intersect(clip), ink)
	}

	bounds := image.Rectangle{Max: size}
	for _, c := range f.Commands {
		switch c := c.(type) {
		case scope.FillRect:
			fillRect(c.Rect, c.Ink)
		case scope.DrawPoints:
			for _, p := range c.Points {
				q := scope.Apply(c.Transform, p)
				fillRect(image.Rectangle{Min: q, Max: q.Add(image.Pt(1, 1))}.Intersect(c.Clip), c.Ink)
			}
		case scope.DrawLines:
			for _, l := range c.Lines {
				l = scope.Segment{A: scope.Apply(c.Transform, l.A), B: scope.Apply(c.Transform, l.B)}
				segment(l, c.Clip, c.Ink)
			}
		case scope.DrawLine:
			segment(c.Line, bounds, c.Ink)
		case scope.DrawImage:
			arrow := arrowCorners(c.Rect, c.Glyph.Direction())
			setInk(scope.InkMarker)
			page.MoveTo(arrow[0].X, arrow[0].Y)
			page.LineTo(arrow[1].X, arrow[1].Y)
			page.LineTo(arrow[2].X, arrow[2].Y)
			page.ClosePath()
			page.Fill()
		}
	}

	return page.Close()
}

// arrowCorners returns the base corners and the tip of an arrow glyph
// filling r and pointing in direction dir.
func arrowCorners(r image.Rectangle, dir image.Point) [3]vec.Vec2 {
	hw, hh := float64(r.Dx())/2, float64(r.Dy())/2
	cx, cy := float64(r.Min.X)+hw, float64(r.Min.Y)+hh
	dx, dy := float64(dir.X), float64(dir.Y)
	at := func(u, v float64) vec.Vec2 {
		return vec.Vec2{
			X: cx - dy*hw*u + dx*hw*v,
			Y: cy + dx*hh*u + dy*hh*v,
		}
	}
	return [3]vec.Vec2{at(-1, -1), at(0, 1), at(1, -1)}
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
