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

var panScenarios = []Scenario{
	{
		Name: "keys",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Top},
			AddCursor{Edge: scope.Left},
			Key{Rune: 'a', Count: 10},
			Key{Rune: 'w', Count: 10},
			Key{Rune: 'd', Count: 3},
			Key{Rune: 's', Count: 4},
			Key{Rune: 'd', Count: 20}, // runs into the left end
		},
	},
	{
		Name: "diagonal",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Bottom},
			Pan{Delta: image.Pt(1, 1)},
			Pan{Delta: image.Pt(2, 3)},
			Pan{Delta: image.Pt(-1, -2)},
		},
	},
	{
		Name: "jump",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Top},
			AddCursor{Edge: scope.Right},
			Pan{Delta: image.Pt(200, 0)},
			Pan{Delta: image.Pt(0, 200)},
			Pan{Delta: image.Pt(-100, -50)},
			Pan{Delta: image.Pt(752, 0)},
			Pan{Delta: image.Pt(1, 0), Rejected: true},
			Pan{Delta: image.Pt(0, -151), Rejected: true},
		},
	},
	{
		Name: "batched",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Top},
			Batch{
				Pan{Delta: image.Pt(1, 0)},
				Pan{Delta: image.Pt(1, 0)},
				Pan{Delta: image.Pt(0, 1)},
			},
			Batch{
				Pan{Delta: image.Pt(5, 0)},
				Drag{Marker: 0, Delta: image.Pt(7, 0)},
				Pan{Delta: image.Pt(-2, 3)},
			},
		},
	},
}
