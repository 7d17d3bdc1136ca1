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

var resizeScenarios = []Scenario{
	{
		Name: "grow_shrink",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Top},
			Resize{Size: image.Pt(500, 400)},
			Resize{Size: image.Pt(450, 350)},
			Pan{Delta: image.Pt(10, 10)},
			Resize{Size: image.Pt(400, 300)},
		},
	},
	{
		Name: "oversize",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Right},
			Resize{Size: image.Pt(1300, 900)},
			Pan{Delta: image.Pt(1, 0), Rejected: true},
			Resize{Size: small},
			Pan{Delta: image.Pt(1, 0)},
		},
	},
}
