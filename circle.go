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

// Circle rasterizes the outline of the circle with centre (cx, cy) and
// radius r using the midpoint algorithm.
//
// At every step the eight points (cx±x, cy±y) and (cx±y, cy±x) are emitted,
// in this order, so that the number of emitted cells is a multiple of eight;
// cells on the diagonals and axes are emitted more than once.  No attempt is
// made to close gaps between neighbouring octant points.  A radius of 0
// yields the centre cell only.  Negative radii are treated like their
// absolute value.
func Circle(cx, cy, r int, emit func(x, y int)) {
	r = abs(r)
	if r == 0 {
		emit(cx, cy)
		return
	}

	x, y := 0, r
	d := 3 - 2*r
	emitOctants(cx, cy, x, y, emit)
	for y >= x {
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
		emitOctants(cx, cy, x, y, emit)
	}
}

func emitOctants(cx, cy, x, y int, emit func(x, y int)) {
	emit(cx+x, cy+y)
	emit(cx-x, cy+y)
	emit(cx+x, cy-y)
	emit(cx-x, cy-y)
	emit(cx+y, cy+x)
	emit(cx-y, cy+x)
	emit(cx+y, cy-x)
	emit(cx-y, cy-x)
}

// CirclePoints returns the cells of [Circle] as a slice, including
// repeated cells.
func CirclePoints(cx, cy, r int) []Point {
	var pts []Point
	Circle(cx, cy, r, func(x, y int) {
		pts = append(pts, Point{x, y})
	})
	return pts
}
