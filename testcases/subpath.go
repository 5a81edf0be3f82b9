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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var subpathCases = []TestCase{
	{
		Name:  "two_triangles",
		Prims: fromPath(twoTriangles(-9, 0, 9, 0, 7)),
	},
	{
		Name:  "overlapping_rect",
		Prims: fromPath(overlappingRectangles(-14, -14, 4, 4, -4, -4, 14, 14)),
	},
	{
		Name:  "many_small_shapes",
		Prims: fromPath(manySmallShapes(5, 5)),
	},
	{
		Name: "rectangle",
		Prims: fromPath((&path.Data{}).
			MoveTo(vec.Vec2{X: -10.4, Y: -5.6}).
			LineTo(vec.Vec2{X: 10.4, Y: -5.6}).
			LineTo(vec.Vec2{X: 10.4, Y: 5.6}).
			LineTo(vec.Vec2{X: -10.4, Y: 5.6}).
			Close().
			Iter()),
	},
	{
		Name: "rounded_lens",
		Prims: fromPath(func(yield func(path.Command, []vec.Vec2) bool) {
			_ = moveTo(yield, -15, 0) &&
				yield(path.CmdCubeTo, []vec.Vec2{{X: -10, Y: 12}, {X: 10, Y: 12}, {X: 15, Y: 0}}) &&
				yield(path.CmdQuadTo, []vec.Vec2{{X: 0, Y: -16}, {X: -15, Y: 0}}) &&
				closePath(yield)
		}),
	},
}

// triangle emits a closed triangle pointing down, centred at (cx, cy).
func triangle(yield func(path.Command, []vec.Vec2) bool, cx, cy, size float64) bool {
	return moveTo(yield, cx, cy-size) &&
		lineTo(yield, cx+size, cy+size) &&
		lineTo(yield, cx-size, cy+size) &&
		closePath(yield)
}

// rectangle emits the closed axis-parallel rectangle with corners
// (x1, y1) and (x2, y2).
func rectangle(yield func(path.Command, []vec.Vec2) bool, x1, y1, x2, y2 float64) bool {
	return moveTo(yield, x1, y1) &&
		lineTo(yield, x2, y1) &&
		lineTo(yield, x2, y2) &&
		lineTo(yield, x1, y2) &&
		closePath(yield)
}

// twoTriangles builds two disjoint triangles as separate subpaths.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = triangle(yield, cx1, cy1, size) && triangle(yield, cx2, cy2, size)
	}
}

// overlappingRectangles builds two overlapping rectangles.  Each one is
// filled on its own, so the overlap is painted twice.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = rectangle(yield, x1a, y1a, x2a, y2a) && rectangle(yield, x1b, y1b, x2b, y2b)
	}
}

// manySmallShapes builds a rows×cols array of small triangles, seven cells
// apart.
func manySmallShapes(rows, cols int) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for row := range rows {
			for col := range cols {
				cx := -14 + 7*float64(col)
				cy := -14 + 7*float64(row)
				if !triangle(yield, cx, cy, 2) {
					return
				}
			}
		}
	}
}
