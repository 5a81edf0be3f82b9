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
	"errors"
	"slices"
	"testing"
)

func fillPoints(t *testing.T, vertices []Point) []Point {
	t.Helper()
	var pts []Point
	err := FillPolygon(vertices, func(x, y int) {
		pts = append(pts, Point{x, y})
	})
	if err != nil {
		t.Fatal(err)
	}
	return pts
}

// block returns the cells x0 <= x <= x1, y0 <= y <= y1 in sorted order.
func block(x0, y0, x1, y1 int) []Point {
	var res []Point
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			res = append(res, Point{x, y})
		}
	}
	return res
}

func TestFillSquare(t *testing.T) {
	square := []Point{{0, 0}, {0, 4}, {4, 4}, {4, 0}}

	interior := fillPoints(t, square)
	if got, want := distinct(interior), block(0, 0, 4, 3); !slices.Equal(got, want) {
		t.Errorf("interior: got %v, want %v", got, want)
	}

	all := interior
	PolygonOutline(square, func(x, y int) {
		all = append(all, Point{x, y})
	})
	got := distinct(all)
	if len(got) != 25 {
		t.Errorf("got %d cells, want 25", len(got))
	}
	if want := block(0, 0, 4, 4); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFillTriangle(t *testing.T) {
	got := fillPoints(t, []Point{{0, 0}, {4, 0}, {0, 4}})
	want := []Point{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0},
		{0, 1}, {1, 1}, {2, 1}, {3, 1},
		{0, 2}, {1, 2}, {2, 2},
		{0, 3}, {1, 3},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// TestFillSharedVertex checks a vertex where one edge ends and the next one
// starts on the same scanline.
func TestFillSharedVertex(t *testing.T) {
	got := fillPoints(t, []Point{{0, 0}, {4, 2}, {0, 4}})
	want := []Point{
		{0, 0},
		{0, 1}, {1, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3},
	}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFillEvenOdd(t *testing.T) {
	// A ring: the outer square is traversed, then the inner square, joined
	// by a zero-width cut along x = -1.
	ring := []Point{
		{-6, -6}, {6, -6}, {6, 6}, {-1, 6}, {-1, 2},
		{2, 2}, {2, -2}, {-2, -2}, {-2, 2}, {-1, 2},
		{-1, 6}, {-6, 6},
	}
	set := make(map[Point]bool)
	for _, p := range fillPoints(t, ring) {
		set[p] = true
	}
	if !set[Point{-5, 0}] || !set[Point{5, 0}] {
		t.Error("ring body not filled")
	}
	if set[Point{0, 0}] {
		t.Error("hole was filled")
	}
}

func TestFillOddCrossings(t *testing.T) {
	tab := NewEdgeTable(1)
	if err := tab.AddSegment(0, 0, 3, 3); err != nil {
		t.Fatal(err)
	}
	called := false
	err := ScanFill(tab, func(x, y int) { called = true })
	if !errors.Is(err, ErrOddCrossings) {
		t.Errorf("got %v, want ErrOddCrossings", err)
	}
	if called {
		t.Error("cells were emitted for a rejected table")
	}
}

func TestFillDegenerate(t *testing.T) {
	cases := []struct {
		name     string
		vertices []Point
		outline  []Point
	}{
		{"coincident", []Point{{1, 1}, {1, 1}, {1, 1}}, []Point{{1, 1}}},
		{"single", []Point{{-2, 3}}, []Point{{-2, 3}}},
		{"collinear", []Point{{0, 0}, {1, 0}, {2, 0}}, []Point{{0, 0}, {1, 0}, {2, 0}}},
		{"empty", nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if pts := fillPoints(t, tc.vertices); len(pts) != 0 {
				t.Errorf("interior: got %v, want none", pts)
			}
			var outline []Point
			PolygonOutline(tc.vertices, func(x, y int) {
				outline = append(outline, Point{x, y})
			})
			if got := distinct(outline); !slices.Equal(got, tc.outline) {
				t.Errorf("outline: got %v, want %v", got, tc.outline)
			}
		})
	}
}

func TestFillDoesNotModifyTable(t *testing.T) {
	tab := PolygonEdges([]Point{{0, 0}, {8, 3}, {2, 9}})
	before := tab.Edges()
	if err := ScanFill(tab, func(x, y int) {}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(tab.Edges(), before) {
		t.Error("edge table was modified")
	}
}

func TestFillDeterministic(t *testing.T) {
	star := []Point{{0, 17}, {-10, -14}, {16, 5}, {-16, 5}, {10, -14}}
	a := fillPoints(t, star)
	b := fillPoints(t, star)
	if !slices.Equal(a, b) {
		t.Error("repeated rasterization gave different results")
	}
	if len(a) == 0 {
		t.Error("star is empty")
	}
}
