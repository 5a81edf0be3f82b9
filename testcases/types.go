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
	"slices"

	"seehuhn.de/go/cellgrid"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single scene to rasterize.
type TestCase struct {
	Name      string // lowercase a-z, 0-9 and _ only
	Radius    int    // grid radius (0 means cellgrid.DefaultRadius)
	Transform cellgrid.Transform
	Prims     []cellgrid.Primitive
}

// Scene returns a new scene holding the primitives of the test case.
func (tc TestCase) Scene() *cellgrid.Scene {
	s := cellgrid.NewScene()
	if tc.Radius > 0 {
		s.Grid = cellgrid.NewGrid(tc.Radius)
	}
	s.Transform.Ops = slices.Clone(tc.Transform.Ops)
	s.Add(tc.Prims...)
	return s
}

// pt is a helper to create a cellgrid.Point from x, y coordinates.
func pt(x, y int) cellgrid.Point {
	return cellgrid.Point{X: x, Y: y}
}

// prims collects primitives of different types into one slice.
func prims(p ...cellgrid.Primitive) []cellgrid.Primitive {
	return p
}

// fromPath converts the subpaths of p into polygons.
func fromPath(p path.Path) []cellgrid.Primitive {
	var res []cellgrid.Primitive
	for _, poly := range cellgrid.PolygonsFromPath(p) {
		res = append(res, poly)
	}
	return res
}

func moveTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdMoveTo, []vec.Vec2{{X: x, Y: y}})
}

func lineTo(yield func(path.Command, []vec.Vec2) bool, x, y float64) bool {
	return yield(path.CmdLineTo, []vec.Vec2{{X: x, Y: y}})
}

func closePath(yield func(path.Command, []vec.Vec2) bool) bool {
	return yield(path.CmdClose, nil)
}
