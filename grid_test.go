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

	"seehuhn.de/go/geom/rect"
)

func TestCellIndex(t *testing.T) {
	g := NewGrid(20)
	cases := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 20, 20, true},
		{-20, 20, 0, 0, true},
		{20, -20, 40, 40, true},
		{5, 3, 17, 25, true},
		{-3, -7, 27, 17, true},
		{21, 0, 20, 41, false},
		{0, -21, 41, 20, false},
		{-21, 0, 20, -1, false},
		{0, 21, -1, 20, false},
	}
	for _, tc := range cases {
		row, col, ok := g.CellIndex(tc.x, tc.y)
		if row != tc.row || col != tc.col || ok != tc.ok {
			t.Errorf("CellIndex(%d, %d) = %d, %d, %t, want %d, %d, %t",
				tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
		}
		if tc.ok {
			if p := g.CellAt(row, col); p != (Point{tc.x, tc.y}) {
				t.Errorf("CellAt(%d, %d) = %v", row, col, p)
			}
		}
	}
}

func TestGridMark(t *testing.T) {
	g := NewGrid(3)
	if g.Size() != 7 {
		t.Fatalf("size: got %d, want 7", g.Size())
	}
	if !g.Mark(1, 2) || !g.Mark(-3, -3) {
		t.Fatal("marking a cell inside the grid failed")
	}
	if g.Mark(4, 0) {
		t.Error("marked a cell outside the grid")
	}
	if !g.Filled(1, 2) || g.Filled(2, 1) || g.Filled(4, 0) {
		t.Error("wrong fill state")
	}
	if g.Count() != 2 {
		t.Errorf("count: got %d, want 2", g.Count())
	}
	// row order: y = 2 comes before y = -3
	if got, want := g.Points(), []Point{{1, 2}, {-3, -3}}; !slices.Equal(got, want) {
		t.Errorf("points: got %v, want %v", got, want)
	}

	g.Clear()
	if g.Count() != 0 {
		t.Error("grid not cleared")
	}
}

func TestGridSnapshot(t *testing.T) {
	g := NewGrid(5)
	g.Mark(0, 0)
	saved := g.Snapshot()

	g.Mark(1, 1)
	g.Mark(-2, 4)
	g.Restore(saved)

	if got, want := g.Points(), []Point{{0, 0}}; !slices.Equal(got, want) {
		t.Errorf("after restore: got %v, want %v", got, want)
	}

	// the snapshot is independent of later changes
	g.Mark(3, 3)
	g.Restore(saved)
	if g.Filled(3, 3) {
		t.Error("snapshot shares storage with the grid")
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(20)
	want := rect.Rect{LLx: -20.5, LLy: -20.5, URx: 20.5, URy: 20.5}
	if got := g.Bounds(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
