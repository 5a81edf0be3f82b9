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
	"cmp"
	"fmt"
	"math"
	"slices"
)

// PolygonEdges builds the edge table of the closed polygon with the given
// vertices.  The last vertex is connected to the first.
func PolygonEdges(vertices []Point) *EdgeTable {
	t := NewEdgeTable(len(vertices))
	for i, a := range vertices {
		b := vertices[(i+1)%len(vertices)]
		// cannot fail, there is room for one edge per vertex
		_ = t.AddSegment(a.X, a.Y, b.X, b.Y)
	}
	return t
}

// ScanFill fills the interior of the edges in t using the even-odd rule
// and calls emit for every interior cell, scanline by scanline from the
// smallest y upwards.  The table itself is not modified.
//
// On every scanline y the edges with MinY <= y < MaxY are active.  They are
// sorted by their current x-intercept and consecutive pairs (0,1), (2,3), ...
// delimit the spans; a span covers the cells from ceil(x0) to floor(x1),
// inclusive.
//
// If a scanline crosses an odd number of edges, ErrOddCrossings is returned
// and emit is not called at all.
func ScanFill(t *EdgeTable, emit func(x, y int)) error {
	pending := t.Clone()
	pending.Sort()

	y, ok := pending.nextMinY()
	if !ok {
		return nil
	}

	var spans []span
	var active []EdgeSample
	for pending.Len() > 0 || len(active) > 0 {
		if len(active) == 0 {
			next, _ := pending.nextMinY()
			y = max(y, next)
		}
		active = pending.popActive(y, active)
		slices.SortStableFunc(active, func(a, b EdgeSample) int {
			return cmp.Compare(a.XOfYMin, b.XOfYMin)
		})

		if len(active)%2 != 0 {
			return fmt.Errorf("scanline %d: %w", y, ErrOddCrossings)
		}
		for i := 0; i < len(active); i += 2 {
			spans = append(spans, span{
				y:    y,
				xMin: int(math.Ceil(active[i].XOfYMin)),
				xMax: int(math.Floor(active[i+1].XOfYMin)),
			})
		}

		y++
		active = slices.DeleteFunc(active, func(e EdgeSample) bool {
			return e.MaxY <= y
		})
		for i := range active {
			active[i].XOfYMin += active[i].InverseSlope
		}
	}

	for _, s := range spans {
		for x := s.xMin; x <= s.xMax; x++ {
			emit(x, s.y)
		}
	}
	return nil
}

type span struct {
	y, xMin, xMax int
}

// FillPolygon calls emit for every interior cell of the closed polygon
// with the given vertices.  See [ScanFill] for details.
func FillPolygon(vertices []Point, emit func(x, y int)) error {
	return ScanFill(PolygonEdges(vertices), emit)
}

// PolygonOutline rasterizes the closed outline of the polygon with the given
// vertices, using [Line] for every edge.  A single vertex yields a single
// cell.
func PolygonOutline(vertices []Point, emit func(x, y int)) {
	for i, a := range vertices {
		b := vertices[(i+1)%len(vertices)]
		Line(a.X, a.Y, b.X, b.Y, emit)
	}
}
