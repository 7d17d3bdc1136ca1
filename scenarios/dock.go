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

package scenarios

import (
	"image"

	"seehuhn.de/go/scope"
)

var dockScenarios = []Scenario{
	{
		Name: "all_edges",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Top},
			AddCursor{Edge: scope.Right},
			AddCursor{Edge: scope.Bottom},
			AddCursor{Edge: scope.Left},
			Pan{Delta: image.Pt(100, 0)},
			Pan{Delta: image.Pt(96, 0)},
			Pan{Delta: image.Pt(1, 0)}, // top cursor docks
			Pan{Delta: image.Pt(0, 100)},
			Pan{Delta: image.Pt(0, 120)},
			Pan{Delta: image.Pt(-197, -220)},
		},
	},
	{
		Name: "drag",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Top},
			Drag{Marker: 0, Delta: image.Pt(-300, 0)},
			Drag{Marker: 0, Delta: image.Pt(300, 0)},
			Drag{Marker: 0, Delta: image.Pt(200, 0)},
			Move{Marker: 0, Position: 100},
		},
	},
	{
		Name: "stacked",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Bottom},
			AddCursor{Edge: scope.Bottom},
			AddCursor{Edge: scope.Bottom},
			Drag{Marker: 0, Delta: image.Pt(-300, 0)},
			Drag{Marker: 1, Delta: image.Pt(-300, 0)},
			Drag{Marker: 2, Delta: image.Pt(-300, 0)},
			Pan{Delta: image.Pt(0, 10)},
		},
	},
}
