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

import "fmt"

// EscapeError is returned by [Grid.FloodFill] if the fill reaches a cell
// outside the grid.  This happens when the seed lies outside the grid or
// when the boundary around the seed has a gap.
type EscapeError struct {
	X, Y int
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("flood fill escaped the grid at (%d, %d)", e.X, e.Y)
}

func (e *EscapeError) Unwrap() error {
	return ErrOutOfGrid
}

// FloodFill paints all cells which are 4-connected to (x, y) without
// crossing a painted cell.  The new cells are marked in the grid and then
// passed to emit, in the order in which they were reached.  Neighbours are
// visited in the order (x+1, y), (x-1, y), (x, y+1), (x, y-1), depth first.
//
// If the fill reaches a cell outside the grid, the grid is left unchanged,
// emit is not called, and an [*EscapeError] is returned.
func (g *Grid) FloodFill(x, y int, emit func(x, y int)) error {
	var filled []int
	stack := []Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		row, col, ok := g.CellIndex(p.X, p.Y)
		if !ok {
			for _, idx := range filled {
				g.cells[idx] = false
			}
			return &EscapeError{X: p.X, Y: p.Y}
		}
		idx := row*g.size + col
		if g.cells[idx] {
			continue
		}
		g.cells[idx] = true
		filled = append(filled, idx)

		// pushed in reverse, so that (x+1, y) is taken next
		stack = append(stack,
			Point{p.X, p.Y - 1},
			Point{p.X, p.Y + 1},
			Point{p.X - 1, p.Y},
			Point{p.X + 1, p.Y},
		)
	}

	for _, idx := range filled {
		p := g.CellAt(idx/g.size, idx%g.size)
		emit(p.X, p.Y)
	}
	return nil
}

// FillTransient is like [Grid.FloodFill], but the grid is restored to its
// previous state before the method returns.  This allows to fill several
// independent regions against the same boundary.
func (g *Grid) FillTransient(x, y int, emit func(x, y int)) error {
	saved := g.Snapshot()
	defer g.Restore(saved)
	return g.FloodFill(x, y, emit)
}
