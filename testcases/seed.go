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

var seedCases = []TestCase{
	{
		Name: "box",
		Prims: prims(
			cellgrid.Segment{A: pt(-6, -6), B: pt(6, -6)},
			cellgrid.Segment{A: pt(6, -6), B: pt(6, 6)},
			cellgrid.Segment{A: pt(6, 6), B: pt(-6, 6)},
			cellgrid.Segment{A: pt(-6, 6), B: pt(-6, -6)},
			cellgrid.Seed{At: pt(0, 0)},
		),
	},
	{
		Name: "circle",
		Prims: prims(
			cellgrid.CircleOutline{Radius: 12},
			cellgrid.Seed{At: pt(0, 0), Color: color.RGBA{R: 250, G: 160, B: 0, A: 255}},
		),
	},
	{
		Name: "two_regions",
		Prims: prims(
			cellgrid.CircleOutline{Radius: 15},
			cellgrid.Segment{A: pt(0, -16), B: pt(0, 16)},
			cellgrid.Seed{At: pt(-5, 0), Color: color.RGBA{R: 0, G: 0, B: 200, A: 255}},
			cellgrid.Seed{At: pt(5, 0), Color: color.RGBA{R: 0, G: 200, B: 0, A: 255}},
		),
	},
	{
		Name: "triangle_outline",
		Prims: prims(
			cellgrid.Segment{A: pt(-14, -10), B: pt(14, -10)},
			cellgrid.Segment{A: pt(14, -10), B: pt(0, 14)},
			cellgrid.Segment{A: pt(0, 14), B: pt(-14, -10)},
			cellgrid.Seed{At: pt(0, 0)},
		),
	},
}
