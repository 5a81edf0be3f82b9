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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the curve flattening tolerance used by
// [PolygonsFromPath], in cells.
const DefaultFlatness = 0.5

// PolygonsFromPath converts every subpath of p into a [Polygon], with the
// vertices rounded to the nearest cell.  Subpaths are closed implicitly.
// Curves are flattened with tolerance [DefaultFlatness].
func PolygonsFromPath(p path.Path) []Polygon {
	return FlattenPath(p, DefaultFlatness)
}

// FlattenPath is like [PolygonsFromPath], but uses the given flatness
// tolerance for curves.  If flatness is not positive, every curve is
// replaced by the chord to its end point.
//
// Consecutive vertices which round to the same cell are merged.
func FlattenPath(p path.Path, flatness float64) []Polygon {
	var res []Polygon
	var cur []Point
	var current vec.Vec2
	flush := func() {
		if len(cur) > 0 {
			res = append(res, Polygon{Vertices: cur})
			cur = nil
		}
	}
	add := func(v vec.Vec2) {
		current = v
		q := toCell(v)
		if n := len(cur); n > 0 && cur[n-1] == q {
			return
		}
		cur = append(cur, q)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			add(pts[0])
		case path.CmdLineTo:
			add(pts[0])
		case path.CmdQuadTo:
			flattenQuadratic(current, pts[0], pts[1], flatness, add)
		case path.CmdCubeTo:
			flattenCubic(current, pts[0], pts[1], pts[2], flatness, add)
		case path.CmdClose:
			flush()
		}
	}
	flush()
	return res
}

// flattenQuadratic calls emit for the points which approximate the
// quadratic Bézier curve p0, p1, p2.  The start point p0 is not emitted.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	// error vector e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if flatness > 0 && e > flatness {
		n = int(math.Ceil(math.Sqrt(e / flatness)))
	}

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
	emit(p2)
}

// flattenCubic calls emit for the points which approximate the cubic
// Bézier curve p0, p1, p2, p3.  The segment count is chosen using Wang's
// formula.  The start point p0 is not emitted.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())
	n := 1
	if flatness > 0 && m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nf := math.Sqrt(3 * m / (4 * flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
	emit(p3)
}
