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

// Line rasterizes the segment from (x1, y1) to (x2, y2) using Bresenham's
// algorithm and calls emit for every cell, in scanning order starting at
// (x1, y1).  Exactly max(|x2-x1|, |y2-y1|)+1 cells are emitted and
// consecutive cells are 8-connected.
//
// The axis with the larger delta drives the loop.  If both deltas are equal,
// y is used.
func Line(x1, y1, x2, y2 int, emit func(x, y int)) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	incX := sign(x2 - x1)
	incY := sign(y2 - y1)

	x, y := x1, y1
	emit(x, y)

	if dx > dy {
		e := 2*dy - dx
		for range dx {
			if e >= 0 {
				y += incY
				e += 2 * (dy - dx)
			} else {
				e += 2 * dy
			}
			x += incX
			emit(x, y)
		}
	} else {
		e := 2*dx - dy
		for range dy {
			if e >= 0 {
				x += incX
				e += 2 * (dx - dy)
			} else {
				e += 2 * dx
			}
			y += incY
			emit(x, y)
		}
	}
}

// LinePoints returns the cells of [Line] as a slice.
func LinePoints(x1, y1, x2, y2 int) []Point {
	pts := make([]Point, 0, max(abs(x2-x1), abs(y2-y1))+1)
	Line(x1, y1, x2, y2, func(x, y int) {
		pts = append(pts, Point{x, y})
	})
	return pts
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
