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
	"errors"
	"fmt"
	"image"
)

// ErrInvalidConfig is returned by Config.Validate for unusable settings.
var ErrInvalidConfig = errors.New("scope: invalid configuration")

// Margins gives the distance between the widget bounds and the plot area.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Steps holds the grid spacing along one axis, in pixels.
type Steps struct {
	Minor int // distance between minor dots
	Major int // distance between major dots
	Ruler int // distance between ruler tick columns/rows
}

// Config holds the fixed constants of a Scope.
// All values are in widget pixels.
type Config struct {
	// Margins between the widget and the plot area. Markers dock in the
	// margins; tick rows are drawn just outside the plot area.
	Margins Margins

	// TickLength is the length of a tick segment.
	TickLength int

	// Horizontal and Vertical give the grid spacing along the x and y axis.
	Horizontal Steps
	Vertical   Steps

	// Maximum bounds all legal viewport positions, in logical coordinates.
	Maximum image.Rectangle

	// Cursor defaults, used by Scope.AddCursor. The n-th cursor is placed at
	// CursorPositionBase + n*CursorPositionIncrement and docks at
	// CursorDockBase + n*CursorDockIncrement from the near end.
	CursorCeiling           int
	CursorDeadzone          int
	CursorDockBase          int
	CursorDockIncrement     int
	CursorPositionBase      int
	CursorPositionIncrement int

	// FloatingGlyph and DockedGlyph are the glyph extents of cursors,
	// measured in the Top orientation.
	FloatingGlyph Extent
	DockedGlyph   Extent

	// PointerSlop is the distance around a pointer line which still
	// counts as a hit.
	PointerSlop int
}

// DefaultConfig returns the settings of the classic oscilloscope widget.
func DefaultConfig() Config {
	return Config{
		Margins:    Margins{Left: 31, Top: 21, Right: 21, Bottom: 21},
		TickLength: 2,
		Horizontal: Steps{Minor: 6, Major: 30, Ruler: 150},
		Vertical:   Steps{Minor: 6, Major: 30, Ruler: 120},
		Maximum:    image.Rect(0, 0, 1200, 800),

		CursorCeiling:           1,
		CursorDeadzone:          0,
		CursorDockBase:          3,
		CursorDockIncrement:     10,
		CursorPositionBase:      200,
		CursorPositionIncrement: 20,

		FloatingGlyph: Extent{Along: 9, Across: 8},
		DockedGlyph:   Extent{Along: 8, Across: 9},

		PointerSlop: 2,
	}
}

// Validate checks that the configuration can be used to build a Scope.
// A zero step would make the grid caches grow without bound.
func (c *Config) Validate() error {
	m := c.Margins
	if m.Left < 0 || m.Top < 0 || m.Right < 0 || m.Bottom < 0 {
		return fmt.Errorf("%w: negative margin %v", ErrInvalidConfig, m)
	}
	if c.TickLength < 0 {
		return fmt.Errorf("%w: negative tick length %d", ErrInvalidConfig, c.TickLength)
	}
	for _, s := range []struct {
		name  string
		steps Steps
	}{
		{"horizontal", c.Horizontal},
		{"vertical", c.Vertical},
	} {
		if s.steps.Minor <= 0 || s.steps.Major <= 0 || s.steps.Ruler <= 0 {
			return fmt.Errorf("%w: %s steps must be positive, got %+v",
				ErrInvalidConfig, s.name, s.steps)
		}
	}
	if c.Maximum.Empty() {
		return fmt.Errorf("%w: empty maximum window %v", ErrInvalidConfig, c.Maximum)
	}
	if c.CursorCeiling < 0 || c.CursorDeadzone < 0 {
		return fmt.Errorf("%w: negative cursor ceiling or deadzone", ErrInvalidConfig)
	}
	if !c.FloatingGlyph.valid() || !c.DockedGlyph.valid() {
		return fmt.Errorf("%w: glyph extents must be positive", ErrInvalidConfig)
	}
	if c.PointerSlop < 0 {
		return fmt.Errorf("%w: negative pointer slop %d", ErrInvalidConfig, c.PointerSlop)
	}
	return nil
}
