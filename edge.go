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
	"slices"
)

// EdgeSample is a non-horizontal polygon edge, oriented so that
// MinY < MaxY.
type EdgeSample struct {
	MinY, MaxY int

	// XOfYMin starts as the x-coordinate of the end point with the smaller
	// y-coordinate.  During a scanline sweep it is advanced by InverseSlope
	// once per scanline.
	XOfYMin float64

	// InverseSlope is dx/dy.
	InverseSlope float64
}

// NewEdgeSample returns the edge from (x1, y1) to (x2, y2).
// The second return value is false for horizontal edges, which contribute
// nothing to a scanline fill.
func NewEdgeSample(x1, y1, x2, y2 int) (EdgeSample, bool) {
	if y1 == y2 {
		return EdgeSample{}, false
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	return EdgeSample{
		MinY:         y1,
		MaxY:         y2,
		XOfYMin:      float64(x1),
		InverseSlope: float64(x2-x1) / float64(y2-y1),
	}, true
}

// EdgeTable holds the edges of one polygon.  The capacity is fixed when the
// table is created; a polygon contributes at most one edge per vertex.
//
// Once sorted, the edges are kept in descending order of MinY, with ties
// broken by placing the larger MaxY first.  Edges to be activated next are
// thus always found at the end of the table.
type EdgeTable struct {
	edges    []EdgeSample
	capacity int
}

// NewEdgeTable returns an empty table which can hold up to capacity edges.
func NewEdgeTable(capacity int) *EdgeTable {
	return &EdgeTable{
		edges:    make([]EdgeSample, 0, capacity),
		capacity: capacity,
	}
}

// Len returns the number of edges in the table.
func (t *EdgeTable) Len() int {
	return len(t.edges)
}

// Cap returns the maximal number of edges the table can hold.
func (t *EdgeTable) Cap() int {
	return t.capacity
}

// Add appends an edge to the table.
func (t *EdgeTable) Add(e EdgeSample) error {
	if len(t.edges) >= t.capacity {
		return ErrTableFull
	}
	t.edges = append(t.edges, e)
	return nil
}

// AddSegment adds the edge from (x1, y1) to (x2, y2).
// Horizontal edges are silently dropped.
func (t *EdgeTable) AddSegment(x1, y1, x2, y2 int) error {
	e, ok := NewEdgeSample(x1, y1, x2, y2)
	if !ok {
		return nil
	}
	return t.Add(e)
}

// Edges returns a copy of the edges, in table order.
func (t *EdgeTable) Edges() []EdgeSample {
	return slices.Clone(t.edges)
}

// Clone returns an independent copy of the table.
func (t *EdgeTable) Clone() *EdgeTable {
	edges := make([]EdgeSample, len(t.edges), t.capacity)
	copy(edges, t.edges)
	return &EdgeTable{edges: edges, capacity: t.capacity}
}

// Sort puts the table into activation order (see [EdgeTable]).
// Edges with equal MinY and MaxY keep their insertion order.
func (t *EdgeTable) Sort() {
	slices.SortStableFunc(t.edges, compareActivation)
}

func compareActivation(a, b EdgeSample) int {
	if c := cmp.Compare(b.MinY, a.MinY); c != 0 {
		return c
	}
	return cmp.Compare(b.MaxY, a.MaxY)
}

// nextMinY returns the MinY of the edge at the end of a sorted table.
func (t *EdgeTable) nextMinY() (int, bool) {
	if len(t.edges) == 0 {
		return 0, false
	}
	return t.edges[len(t.edges)-1].MinY, true
}

// popActive moves all edges with MinY <= y from the end of a sorted table
// to active.
func (t *EdgeTable) popActive(y int, active []EdgeSample) []EdgeSample {
	n := len(t.edges)
	for n > 0 && t.edges[n-1].MinY <= y {
		active = append(active, t.edges[n-1])
		n--
	}
	t.edges = t.edges[:n]
	return active
}
