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

// Package scenarios holds scripted oscilloscope sessions. They are used
// to test renderers and to generate reference images.
package scenarios

import (
	"errors"
	"fmt"
	"image"

	"seehuhn.de/go/scope"
)

// ErrUnexpected is returned by Run when a step does not behave as the
// scenario says.
var ErrUnexpected = errors.New("scenarios: unexpected result")

// Scenario is a scripted session on a new Scope.
type Scenario struct {
	Name  string      // lowercase a-z and _ only
	Size  image.Point // initial widget size
	Steps []Step      // one frame is taken after every step
}

// Step is one user action, or a group of actions within the same frame.
type Step interface {
	apply(s *scope.Scope) error
}

// Pan moves the viewport. If Rejected is set, the pan is expected to fail.
type Pan struct {
	Delta    image.Point
	Rejected bool
}

func (p Pan) apply(s *scope.Scope) error {
	if ok := s.Pan(p.Delta); ok == p.Rejected {
		return fmt.Errorf("%w: pan %v returned %t", ErrUnexpected, p.Delta, ok)
	}
	return nil
}

// Key presses a pan key Count times. Presses at the end of the maximum
// window are ignored.
type Key struct {
	Rune  rune
	Count int
}

func (k Key) apply(s *scope.Scope) error {
	delta, ok := scope.KeyDelta(k.Rune)
	if !ok {
		return fmt.Errorf("%w: %q is not a pan key", ErrUnexpected, k.Rune)
	}
	for range k.Count {
		s.Pan(delta)
	}
	return nil
}

// AddCursor adds a cursor with the default settings.
type AddCursor struct {
	Edge scope.Edge
}

func (a AddCursor) apply(s *scope.Scope) error {
	s.AddCursor(a.Edge)
	return nil
}

// AddMarker adds a marker with explicit settings.
type AddMarker struct {
	Marker scope.Marker
}

func (a AddMarker) apply(s *scope.Scope) error {
	s.AddMarker(a.Marker)
	return nil
}

// Drag moves a marker with the mouse.
type Drag struct {
	Marker int
	Delta  image.Point
}

func (d Drag) apply(s *scope.Scope) error {
	if err := checkMarker(s, d.Marker); err != nil {
		return err
	}
	s.DragMarker(d.Marker, d.Delta)
	return nil
}

// Move sets the logical position of a marker.
type Move struct {
	Marker   int
	Position int
}

func (m Move) apply(s *scope.Scope) error {
	if err := checkMarker(s, m.Marker); err != nil {
		return err
	}
	s.MoveMarker(m.Marker, m.Position)
	return nil
}

// SetActive shows or hides a marker.
type SetActive struct {
	Marker int
	Active bool
}

func (a SetActive) apply(s *scope.Scope) error {
	if err := checkMarker(s, a.Marker); err != nil {
		return err
	}
	s.SetMarkerActive(a.Marker, a.Active)
	return nil
}

// Resize changes the widget size.
type Resize struct {
	Size image.Point
}

func (r Resize) apply(s *scope.Scope) error {
	s.Resize(r.Size)
	return nil
}

// Batch applies several steps before the next frame is taken.
type Batch []Step

func (b Batch) apply(s *scope.Scope) error {
	for _, step := range b {
		if err := step.apply(s); err != nil {
			return err
		}
	}
	return nil
}

func checkMarker(s *scope.Scope, i int) error {
	if i < 0 || i >= s.NumMarkers() {
		return fmt.Errorf("%w: no marker %d", ErrUnexpected, i)
	}
	return nil
}

// Run replays the scenario on a new Scope. The frame taken after the
// initial resize is passed to visit with step 0, the frame after Steps[i]
// with step i+1. visit may be nil.
func (sc *Scenario) Run(cfg scope.Config, visit func(step int, s *scope.Scope, f scope.Frame)) (*scope.Scope, error) {
	s, err := scope.New(cfg)
	if err != nil {
		return nil, err
	}
	s.Resize(sc.Size)
	f := s.Frame()
	if visit != nil {
		visit(0, s, f)
	}

	for i, step := range sc.Steps {
		if err := step.apply(s); err != nil {
			return nil, fmt.Errorf("%s step %d: %w", sc.Name, i+1, err)
		}
		f := s.Frame()
		if visit != nil {
			visit(i+1, s, f)
		}
	}
	return s, nil
}

// MaxSize returns the largest widget extent used by the scenario.
func (sc *Scenario) MaxSize() image.Point {
	size := sc.Size
	var walk func(steps []Step)
	walk = func(steps []Step) {
		for _, step := range steps {
			switch step := step.(type) {
			case Resize:
				size.X = max(size.X, step.Size.X)
				size.Y = max(size.Y, step.Size.Y)
			case Batch:
				walk(step)
			}
		}
	}
	walk(sc.Steps)
	return size
}
