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

import "seehuhn.de/go/cellgrid"

// unitSquare is the square (0,0)-(4,4), used as input for the
// transformation cases.
var unitSquare = cellgrid.Polygon{
	Vertices: []cellgrid.Point{pt(0, 0), pt(0, 4), pt(4, 4), pt(4, 0)},
}

var transformCases = []TestCase{
	// ========================================
	// Translation and scaling
	// ========================================
	{
		Name:      "translate",
		Transform: *new(cellgrid.Transform).Translate(-10, 6),
		Prims:     prims(unitSquare),
	},
	{
		Name:      "scale_2x",
		Transform: *new(cellgrid.Transform).Scale(2, 2),
		Prims:     prims(unitSquare),
	},
	{
		Name:      "scale_half",
		Transform: *new(cellgrid.Transform).Scale(0.5, 0.5),
		Prims:     prims(cellgrid.CircleOutline{Radius: 16}),
	},
	{
		Name:      "scale_2x_1y",
		Transform: *new(cellgrid.Transform).Scale(2, 1),
		Prims:     prims(unitSquare, cellgrid.Segment{A: pt(-5, -5), B: pt(5, -10)}),
	},

	// ========================================
	// Rotation and mirroring
	// ========================================
	{
		Name:      "rotate_90deg",
		Transform: *new(cellgrid.Transform).Rotate(90),
		Prims:     prims(cellgrid.Triangle{A: pt(2, 0), B: pt(14, 0), C: pt(2, 8)}),
	},
	{
		Name:      "rotate_45deg",
		Transform: *new(cellgrid.Transform).Rotate(45),
		Prims:     prims(cellgrid.Polygon{Vertices: []cellgrid.Point{pt(-8, -8), pt(8, -8), pt(8, 8), pt(-8, 8)}}),
	},
	{
		Name:      "mirror",
		Transform: *new(cellgrid.Transform).Mirror(),
		Prims:     prims(cellgrid.Triangle{A: pt(2, 2), B: pt(14, 2), C: pt(2, 10)}),
	},

	// ========================================
	// Combined
	// ========================================
	{
		Name:      "translate_rotate",
		Transform: *new(cellgrid.Transform).Translate(8, 0).Rotate(90),
		Prims:     prims(unitSquare),
	},
	{
		Name:      "rotate_translate",
		Transform: *new(cellgrid.Transform).Rotate(90).Translate(8, 0),
		Prims:     prims(unitSquare),
	},
	{
		Name:      "seed_rotated",
		Transform: *new(cellgrid.Transform).Rotate(30).Translate(2, 1),
		Prims: prims(
			cellgrid.CircleOutline{Radius: 8},
			cellgrid.Seed{At: pt(0, 0)},
		),
	},
}
