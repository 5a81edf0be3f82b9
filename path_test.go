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

import (
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPolygonsFromPath(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4.4, Y: 0}).
		LineTo(vec.Vec2{X: 4.4, Y: 3.6}).
		Close().
		MoveTo(vec.Vec2{X: -2, Y: -2}).
		LineTo(vec.Vec2{X: -2.2, Y: -1.9}). // rounds to the previous vertex
		LineTo(vec.Vec2{X: -5, Y: -2}).
		LineTo(vec.Vec2{X: -5, Y: -6})

	polys := PolygonsFromPath(p.Iter())
	if len(polys) != 2 {
		t.Fatalf("got %d polygons, want 2", len(polys))
	}

	want := [][]Point{
		{{0, 0}, {4, 0}, {4, 4}},
		{{-2, -2}, {-5, -2}, {-5, -6}},
	}
	for i, poly := range polys {
		if !slices.Equal(poly.Vertices, want[i]) {
			t.Errorf("polygon %d: got %v, want %v", i, poly.Vertices, want[i])
		}
	}
}

func TestPolygonsFromPathCurves(t *testing.T) {
	var p path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: 5, Y: 5}, {X: 10, Y: 0}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 8, Y: -3}, {X: 3, Y: -3}, {X: 1, Y: -4}}) &&
			yield(path.CmdClose, nil)
	}

	polys := PolygonsFromPath(p)
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	want := []Point{{0, 0}, {3, 2}, {7, 2}, {10, 0}, {7, -2}, {4, -3}, {1, -4}}
	if !slices.Equal(polys[0].Vertices, want) {
		t.Errorf("got %v, want %v", polys[0].Vertices, want)
	}

	chords := FlattenPath(p, 0)
	want = []Point{{0, 0}, {10, 0}, {1, -4}}
	if len(chords) != 1 || !slices.Equal(chords[0].Vertices, want) {
		t.Errorf("flatness 0: got %v, want %v", chords, want)
	}
}

func TestFlattenTolerance(t *testing.T) {
	var p path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: -18, Y: 0}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: -18, Y: 24}, {X: 18, Y: 24}, {X: 18, Y: 0}})
	}

	coarse := FlattenPath(p, 4)
	fine := FlattenPath(p, 0.1)
	if len(coarse) != 1 || len(fine) != 1 {
		t.Fatal("wrong number of polygons")
	}
	if len(fine[0].Vertices) <= len(coarse[0].Vertices) {
		t.Errorf("finer tolerance gave %d vertices, coarse gave %d",
			len(fine[0].Vertices), len(coarse[0].Vertices))
	}
	for _, poly := range append(coarse, fine...) {
		v := poly.Vertices
		if v[0] != (Point{-18, 0}) || v[len(v)-1] != (Point{18, 0}) {
			t.Errorf("end points not preserved: %v", v)
		}
	}
}

func TestPolygonsFromPathEmpty(t *testing.T) {
	if polys := PolygonsFromPath((&path.Data{}).Iter()); len(polys) != 0 {
		t.Errorf("got %d polygons, want none", len(polys))
	}
}
