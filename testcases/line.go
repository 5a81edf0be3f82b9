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

	"seehuhn.de/go/cellgrid"
)

var lineCases = []TestCase{
	{
		Name:  "horizontal",
		Prims: prims(cellgrid.Segment{A: pt(-15, 3), B: pt(15, 3)}),
	},
	{
		Name:  "vertical",
		Prims: prims(cellgrid.Segment{A: pt(-4, -15), B: pt(-4, 15)}),
	},
	{
		Name:  "diagonal",
		Prims: prims(cellgrid.Segment{A: pt(-12, -12), B: pt(12, 12)}),
	},
	{
		Name:  "steep",
		Prims: prims(cellgrid.Segment{A: pt(0, 0), B: pt(3, 4)}),
	},
	{
		Name:  "shallow_backwards",
		Prims: prims(cellgrid.Segment{A: pt(17, 5), B: pt(-17, -2)}),
	},
	{
		Name:  "point",
		Prims: prims(cellgrid.Segment{A: pt(2, 2), B: pt(2, 2)}),
	},
	{
		Name: "fan",
		Prims: func() []cellgrid.Primitive {
			var res []cellgrid.Primitive
			for k := -18; k <= 18; k += 6 {
				res = append(res,
					cellgrid.Segment{A: pt(0, 0), B: pt(k, 18)},
					cellgrid.Segment{A: pt(0, 0), B: pt(18, k), Color: color.Black},
				)
			}
			return res
		}(),
	},
	{
		Name:  "clipped",
		Prims: prims(cellgrid.Segment{A: pt(-30, -10), B: pt(30, 10)}),
	},
}
