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
	"slices"

	"seehuhn.de/go/geom/rect"
)

// DefaultRadius is the grid radius used by [NewScene].
const DefaultRadius = 20

// Grid records which cells have been painted.  The grid covers the cells
// with coordinates -Radius <= x, y <= Radius.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	radius int
	size   int
	cells  []bool // row-major, see CellIndex
}

// NewGrid returns an empty grid covering [-radius, radius] on both axes.
func NewGrid(radius int) *Grid {
	radius = max(radius, 0)
	size := 2*radius + 1
	return &Grid{
		radius: radius,
		size:   size,
		cells:  make([]bool, size*size),
	}
}

// Radius returns the largest coordinate covered by the grid.
func (g *Grid) Radius() int {
	return g.radius
}

// Size returns the number of rows (and of columns) of the grid.
func (g *Grid) Size() int {
	return g.size
}

// CellIndex maps the cell (x, y) to its row and column in the grid.
// Row 0 holds the cells with y = Radius, so that rows run downwards like
// image rows; column 0 holds the cells with x = -Radius.
// The last return value is false if the cell lies outside the grid.
func (g *Grid) CellIndex(x, y int) (row, col int, ok bool) {
	row = g.radius - y
	col = x + g.radius
	ok = row >= 0 && row < g.size && col >= 0 && col < g.size
	return row, col, ok
}

// CellAt is the inverse of [Grid.CellIndex].
func (g *Grid) CellAt(row, col int) Point {
	return Point{X: col - g.radius, Y: g.radius - row}
}

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	_, _, ok := g.CellIndex(x, y)
	return ok
}

// Mark records the cell (x, y) as painted.
// The return value is false if the cell lies outside the grid.
func (g *Grid) Mark(x, y int) bool {
	row, col, ok := g.CellIndex(x, y)
	if !ok {
		return false
	}
	g.cells[row*g.size+col] = true
	return true
}

// Filled reports whether the cell (x, y) has been painted.
// Cells outside the grid are never filled.
func (g *Grid) Filled(x, y int) bool {
	row, col, ok := g.CellIndex(x, y)
	if !ok {
		return false
	}
	return g.cells[row*g.size+col]
}

// Count returns the number of painted cells.
func (g *Grid) Count() int {
	n := 0
	for _, filled := range g.cells {
		if filled {
			n++
		}
	}
	return n
}

// Points returns the painted cells in row order.
func (g *Grid) Points() []Point {
	var pts []Point
	for i, filled := range g.cells {
		if filled {
			pts = append(pts, g.CellAt(i/g.size, i%g.size))
		}
	}
	return pts
}

// Clear marks all cells as unpainted.
func (g *Grid) Clear() {
	clear(g.cells)
}

// GridState is a saved copy of the contents of a [Grid].
type GridState struct {
	cells []bool
}

// Snapshot saves the current contents of the grid.
func (g *Grid) Snapshot() GridState {
	return GridState{cells: slices.Clone(g.cells)}
}

// Restore resets the grid to a state previously returned by
// [Grid.Snapshot] on the same grid.
func (g *Grid) Restore(s GridState) {
	copy(g.cells, s.cells)
}

// Bounds returns the area covered by the grid in cell coordinates.
// Every cell is a unit square centred on its integer coordinates.
func (g *Grid) Bounds() rect.Rect {
	r := float64(g.radius) + 0.5
	return rect.Rect{LLx: -r, LLy: -r, URx: r, URy: r}
}
