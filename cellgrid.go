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

// Package cellgrid implements scan conversion of lines, circles and filled
// polygons onto a bounded grid of integer cells, together with seeded flood
// fill over the cells painted so far.
//
// All rasterizers are integer (or, for polygon edges, incremental) algorithms
// with fixed tie-break rules, so that the same input always produces the same
// ordered sequence of cells.  Cells are handed to a callback, or to a
// [Plotter] such as an [image.RGBA], which is responsible for mapping them to
// device pixels.
package cellgrid

import (
	"errors"
	"image/color"
)

// Point is a rasterized cell coordinate.
type Point struct {
	X, Y int
}

// Cell is a rasterized cell together with the colour it is painted in.
type Cell struct {
	Point
	Color color.Color
}

// Plotter is a drawing surface which can paint unit cells.
// Every [image/draw.Image] satisfies this interface.
type Plotter interface {
	Set(x, y int, c color.Color)
}

var (
	// ErrOddCrossings is returned by the polygon scan fill if a scanline
	// crosses an odd number of edges.  This cannot happen for closed
	// polygons with integer vertices, but it can for hand-built edge tables.
	ErrOddCrossings = errors.New("odd number of active edges on scanline")

	// ErrTableFull is returned when an edge is added to an [EdgeTable]
	// which already holds as many edges as its capacity.
	ErrTableFull = errors.New("edge table is full")

	// ErrOutOfGrid indicates that a cell outside the occupancy grid was
	// accessed.
	ErrOutOfGrid = errors.New("cell outside of grid")
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
