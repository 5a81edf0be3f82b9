// seehuhn.de/go/cellgrid - integer scan conversion on a cell grid
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

package cellgrid

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"seehuhn.de/go/geom/matrix"
)

// Default colours of a [Scene].
var (
	DefaultColor        = color.RGBA{R: 0, G: 178, B: 178, A: 255}
	DefaultFillColor    = color.RGBA{R: 0, G: 178, B: 178, A: 255}
	DefaultOutlineColor = color.RGBA{R: 204, G: 0, B: 0, A: 255}
)

// Scene is a list of primitives together with the transformation applied
// to them.  The cells of the scene are computed once and cached, so that
// the scene can be rendered every frame without repeating the scan
// conversion.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	// Transform is applied to all primitives.
	Transform Transform

	// Grid records the cells painted by the primitives.  Flood fills are
	// bounded by it.
	Grid *Grid

	// Color is used for dots, lines and circles without an explicit colour.
	Color color.Color

	// FillColor is used for polygon interiors and flood fills without an
	// explicit colour.
	FillColor color.Color

	// OutlineColor is used for polygon outlines without an explicit colour.
	OutlineColor color.Color

	prims []Primitive

	// cache
	cells    []Cell
	cacheCTM matrix.Matrix
	valid    bool
}

// NewScene returns an empty scene on a grid of radius [DefaultRadius].
func NewScene() *Scene {
	return &Scene{
		Grid:         NewGrid(DefaultRadius),
		Color:        DefaultColor,
		FillColor:    DefaultFillColor,
		OutlineColor: DefaultOutlineColor,
	}
}

// Add appends primitives to the scene.
func (s *Scene) Add(p ...Primitive) {
	s.prims = append(s.prims, p...)
	s.valid = false
}

// Len returns the number of primitives in the scene.
func (s *Scene) Len() int {
	return len(s.prims)
}

// Invalidate discards the cached cells.  This is only needed after changing
// the colours or the grid; added primitives and changes of the
// transformation are detected automatically.
func (s *Scene) Invalidate() {
	s.valid = false
}

// Cells returns the cells of all primitives, in drawing order.
// The result is cached.  The returned slice must not be modified, and it
// is only valid until the cells are recomputed after a change of the scene.
//
// If a primitive cannot be rasterized, the error is returned together with
// the cells of the primitives before it.
func (s *Scene) Cells() ([]Cell, error) {
	ctm := s.Transform.Matrix()
	if s.valid && ctm == s.cacheCTM {
		return s.cells, nil
	}

	s.Grid.Clear()
	rc := &rasterContext{
		ctm:     ctm,
		grid:    s.Grid,
		cells:   s.cells[:0],
		color:   s.Color,
		fill:    s.FillColor,
		outline: s.OutlineColor,
	}

	log := Logger()
	for i, p := range s.prims {
		before := len(rc.cells)
		err := p.rasterize(rc)
		if err != nil {
			var esc *EscapeError
			switch {
			case errors.As(err, &esc):
				log.Warn("flood fill escaped", "index", i, "x", esc.X, "y", esc.Y)
			case errors.Is(err, ErrOddCrossings):
				log.Warn("polygon rejected", "index", i, "error", err)
			}
			s.cells = rc.cells
			s.valid = false
			return rc.cells, fmt.Errorf("primitive %d (%T): %w", i, p, err)
		}
		log.Debug("rasterized primitive",
			slog.Int("index", i),
			slog.String("kind", fmt.Sprintf("%T", p)),
			slog.Int("cells", len(rc.cells)-before))
	}

	s.cells = rc.cells
	s.cacheCTM = ctm
	s.valid = true
	return s.cells, nil
}

// Render paints all cells of the scene onto p.
func (s *Scene) Render(p Plotter) error {
	cells, err := s.Cells()
	if err != nil {
		return err
	}
	for _, c := range cells {
		p.Set(c.X, c.Y, c.Color)
	}
	return nil
}
