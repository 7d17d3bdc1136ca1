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

// Command export writes the frames of all scenarios to JSON, for
// inspection and for driving renderers outside of Go.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/scope"
	"seehuhn.de/go/scope/scenarios"
)

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	cfg := scope.DefaultConfig()
	for _, category := range slices.Sorted(maps.Keys(scenarios.All)) {
		for _, sc := range scenarios.All[category] {
			js := jsonScenario{Name: category + "_" + sc.Name}
			_, err := sc.Run(cfg, func(step int, s *scope.Scope, f scope.Frame) {
				js.Frames = append(js.Frames, toJSON(s, f))
			})
			if err != nil {
				panic(err)
			}
			out.Scenarios = append(out.Scenarios, js)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/frames.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonScenario struct {
	Name   string      `json:"name"`
	Frames []jsonFrame `json:"frames"`
}

type jsonFrame struct {
	Size     []int         `json:"size"`
	Damage   [][]int       `json:"damage"`
	Commands []jsonCommand `json:"commands"`
}

type jsonCommand struct {
	Op        string    `json:"op"`
	Ink       int       `json:"ink"`
	Rect      []int     `json:"rect,omitempty"`
	Clip      []int     `json:"clip,omitempty"`
	Delta     []int     `json:"delta,omitempty"`
	Transform []float64 `json:"transform,omitempty"`
	Points    [][]int   `json:"points,omitempty"`
	Lines     [][]int   `json:"lines,omitempty"`
	Glyph     string    `json:"glyph,omitempty"`
}

func toJSON(s *scope.Scope, f scope.Frame) jsonFrame {
	size := s.Layout().Widget.Size()
	jf := jsonFrame{Size: []int{size.X, size.Y}}
	for _, r := range f.Damage {
		jf.Damage = append(jf.Damage, rectJSON(r))
	}

	for _, c := range f.Commands {
		var jc jsonCommand
		switch c := c.(type) {
		case scope.Scroll:
			jc.Op = "scroll"
			jc.Rect = rectJSON(c.Rect)
			jc.Delta = []int{c.Delta.X, c.Delta.Y}
		case scope.FillRect:
			jc.Op = "fill"
			jc.Ink = int(c.Ink)
			jc.Rect = rectJSON(c.Rect)
		case scope.DrawPoints:
			jc.Op = "points"
			jc.Ink = int(c.Ink)
			jc.Clip = rectJSON(c.Clip)
			jc.Transform = c.Transform[:]
			for _, p := range c.Points {
				jc.Points = append(jc.Points, []int{p.X, p.Y})
			}
		case scope.DrawLines:
			jc.Op = "lines"
			jc.Ink = int(c.Ink)
			jc.Clip = rectJSON(c.Clip)
			jc.Transform = c.Transform[:]
			for _, l := range c.Lines {
				jc.Lines = append(jc.Lines, []int{l.A.X, l.A.Y, l.B.X, l.B.Y})
			}
		case scope.DrawLine:
			jc.Op = "line"
			jc.Ink = int(c.Ink)
			l := c.Line
			jc.Lines = [][]int{{l.A.X, l.A.Y, l.B.X, l.B.Y}}
		case scope.DrawImage:
			jc.Op = "glyph"
			jc.Ink = int(scope.InkMarker)
			jc.Rect = rectJSON(c.Rect)
			jc.Glyph = c.Glyph.String()
		}
		jf.Commands = append(jf.Commands, jc)
	}
	return jf
}

func rectJSON(r image.Rectangle) []int {
	return []int{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
}
