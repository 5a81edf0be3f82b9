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

var circleCases = []TestCase{
	{
		Name:  "radius_5",
		Prims: prims(cellgrid.CircleOutline{Radius: 5}),
	},
	{
		Name:  "radius_0",
		Prims: prims(cellgrid.CircleOutline{Center: pt(3, -2)}),
	},
	{
		Name:  "radius_1",
		Prims: prims(cellgrid.CircleOutline{Radius: 1}),
	},
	{
		Name:  "off_centre",
		Prims: prims(cellgrid.CircleOutline{Center: pt(-6, 4), Radius: 9}),
	},
	{
		Name: "concentric",
		Prims: prims(
			cellgrid.CircleOutline{Radius: 4},
			cellgrid.CircleOutline{Radius: 10},
			cellgrid.CircleOutline{Radius: 18},
		),
	},
	{
		Name:   "large",
		Radius: 100,
		Prims:  prims(cellgrid.CircleOutline{Radius: 90}),
	},
}
