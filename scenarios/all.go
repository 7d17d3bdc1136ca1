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

import "image"

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Scenario{
	"pan":     panScenarios,
	"dock":    dockScenarios,
	"markers": markerScenarios,
	"resize":  resizeScenarios,
}

// small is the default widget size. With the default configuration the
// plot area is 348x258 pixels.
var small = image.Pt(400, 300)
