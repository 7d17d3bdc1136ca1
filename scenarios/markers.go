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

// baseline returns the zero line marker of a data channel.
func baseline(e scope.Edge, position int) scope.Marker {
	cfg := scope.DefaultConfig()
	return scope.Marker{
		Position:      position,
		Edge:          e,
		Ceiling:       1,
		Active:        true,
		Dock:          scope.Extent{Along: 3, Across: 1},
		FloatingGlyph: cfg.FloatingGlyph,
		DockedGlyph:   cfg.DockedGlyph,
		PointerSlop:   cfg.PointerSlop,
	}
}

var markerScenarios = []Scenario{
	{
		Name: "hide_show",
		Size: small,
		Steps: []Step{
			AddCursor{Edge: scope.Bottom},
			SetActive{Marker: 0, Active: false},
			Pan{Delta: image.Pt(3, 0)},
			SetActive{Marker: 0, Active: true},
		},
	},
	{
		Name: "baseline",
		Size: small,
		Steps: []Step{
			AddMarker{Marker: baseline(scope.Left, 129)},
			AddMarker{Marker: baseline(scope.Right, 60)},
			Pan{Delta: image.Pt(0, 50)},
			Pan{Delta: image.Pt(0, 100)}, // both baselines dock
			Pan{Delta: image.Pt(0, -150)},
		},
	},
}
