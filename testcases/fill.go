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
	"image/color"
	"math"

	"seehuhn.de/go/cellgrid"
)

var polygonCases = []TestCase{
	{
		Name: "square",
		Prims: prims(cellgrid.Polygon{
			Vertices: []cellgrid.Point{pt(0, 0), pt(0, 4), pt(4, 4), pt(4, 0)},
		}),
	},
	{
		Name:  "triangle",
		Prims: prims(cellgrid.Triangle{A: pt(-10, -8), B: pt(10, -8), C: pt(0, 12)}),
	},
	{
		Name: "star",
		Prims: prims(cellgrid.Polygon{
			Vertices: fivePointStar(0, 0, 17),
			Fill:     color.RGBA{R: 230, G: 200, B: 0, A: 255},
		}),
	},
	{
		Name: "concave",
		Prims: prims(cellgrid.Polygon{
			Vertices: []cellgrid.Point{
				pt(-12, -12), pt(12, -12), pt(12, 12), pt(0, 0), pt(-12, 12),
			},
		}),
	},
	{
		Name: "shared_vertices",
		Prims: prims(cellgrid.Polygon{
			Vertices: []cellgrid.Point{
				pt(-8, -8), pt(0, -4), pt(8, -8), pt(8, 8), pt(0, 4), pt(-8, 8),
			},
		}),
	},
	{
		Name: "collinear",
		Prims: prims(cellgrid.Polygon{
			Vertices: []cellgrid.Point{pt(-5, 0), pt(0, 0), pt(5, 0)},
		}),
	},
	{
		Name: "coincident",
		Prims: prims(cellgrid.Polygon{
			Vertices: []cellgrid.Point{pt(1, 1), pt(1, 1), pt(1, 1)},
		}),
	},
}

// fivePointStar returns the vertices of a five-pointed star
// (self-intersecting), rounded to cells.
func fivePointStar(cx, cy, r float64) []cellgrid.Point {
	pts := make([]cellgrid.Point, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 + math.Pi/2
		pts[i] = cellgrid.Point{
			X: int(math.Round(cx + r*math.Cos(angle))),
			Y: int(math.Round(cy + r*math.Sin(angle))),
		}
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	res := make([]cellgrid.Point, len(order))
	for i, j := range order {
		res[i] = pts[j]
	}
	return res
}
