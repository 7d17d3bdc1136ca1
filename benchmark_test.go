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
	"fmt"
	"image"
	"testing"
)

// BenchmarkGridResize measures the incremental cache update while the
// widget is dragged larger and smaller.
func BenchmarkGridResize(b *testing.B) {
	cfg := DefaultConfig()
	g := NewGridCache(cfg.Horizontal, cfg.Vertical, cfg.TickLength)
	sizes := []image.Point{{800, 600}, {801, 600}, {801, 601}, {790, 590}, {1600, 1200}}

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		g.Resize(sizes[i%len(sizes)])
		i++
	}
}

// BenchmarkPlan measures planning a damaged rectangle of various sizes,
// with both batch orders.
func BenchmarkPlan(b *testing.B) {
	cfg := DefaultConfig()
	s, err := New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	s.Resize(image.Pt(800, 600))
	for _, e := range []Edge{Top, Right, Bottom, Left} {
		s.AddCursor(e)
	}
	s.Frame()

	p := NewPlanner(s.grid, cfg.Horizontal, cfg.Vertical, cfg.TickLength)
	areas := []image.Rectangle{
		image.Rect(778, 19, 779, 581), // exposed strip
		image.Rect(100, 100, 300, 200),
		s.layout.Widget,
	}
	orders := []struct {
		name  string
		order batchOrder
	}{
		{"rows", orderRows},
		{"columns", orderColumns},
	}
	for _, r := range areas {
		for _, o := range orders {
			b.Run(fmt.Sprintf("%dx%d/%s", r.Dx(), r.Dy(), o.name), func(b *testing.B) {
				p.order = o.order
				damage := []image.Rectangle{r}
				b.ReportAllocs()
				for b.Loop() {
					p.Plan(s.layout, &s.vp, &s.markers, damage)
				}
			})
		}
	}
}
