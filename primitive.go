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
	"image/color"

	"seehuhn.de/go/geom/matrix"
)

// Primitive is a shape which can be added to a [Scene].
// The implementations in this package are [Dot], [Segment], [Triangle],
// [CircleOutline], [Polygon] and [Seed].
type Primitive interface {
	rasterize(rc *rasterContext) error
}

// rasterContext carries the state of one rasterization pass over a scene.
type rasterContext struct {
	ctm   matrix.Matrix
	grid  *Grid
	cells []Cell

	color, fill, outline color.Color
}

// plot appends a cell and records it in the occupancy grid.
// Cells outside the grid are still appended.
func (rc *rasterContext) plot(x, y int, c color.Color) {
	rc.cells = append(rc.cells, Cell{Point: Point{x, y}, Color: c})
	rc.grid.Mark(x, y)
}

func (rc *rasterContext) plotter(c color.Color) func(x, y int) {
	return func(x, y int) { rc.plot(x, y, c) }
}

func (rc *rasterContext) transform(pts ...Point) []Point {
	res := make([]Point, len(pts))
	for i, p := range pts {
		res[i] = transformPoint(rc.ctm, p)
	}
	return res
}

func orDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}

// Dot is a single cell.
type Dot struct {
	At    Point
	Color color.Color // nil means Scene.Color
}

func (d Dot) rasterize(rc *rasterContext) error {
	p := transformPoint(rc.ctm, d.At)
	rc.plot(p.X, p.Y, orDefault(d.Color, rc.color))
	return nil
}

// Segment is a straight line between two cells.
type Segment struct {
	A, B  Point
	Color color.Color // nil means Scene.Color
}

func (s Segment) rasterize(rc *rasterContext) error {
	pts := rc.transform(s.A, s.B)
	Line(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, rc.plotter(orDefault(s.Color, rc.color)))
	return nil
}

// CircleOutline is the outline of a circle.
// Under a transformation the centre is mapped and the radius is scaled by
// the square root of the area scaling factor.
type CircleOutline struct {
	Center Point
	Radius int
	Color  color.Color // nil means Scene.Color
}

func (c CircleOutline) rasterize(rc *rasterContext) error {
	center := transformPoint(rc.ctm, c.Center)
	r := transformRadius(rc.ctm, c.Radius)
	Circle(center.X, center.Y, r, rc.plotter(orDefault(c.Color, rc.color)))
	return nil
}

// Polygon is a filled polygon.  The interior is painted first, followed by
// the outline in a distinct colour.
type Polygon struct {
	Vertices []Point
	Fill     color.Color // nil means Scene.FillColor
	Outline  color.Color // nil means Scene.OutlineColor
}

func (p Polygon) rasterize(rc *rasterContext) error {
	return fillAndOutline(rc, rc.transform(p.Vertices...), p.Fill, p.Outline)
}

// Triangle is a filled triangle.
type Triangle struct {
	A, B, C Point
	Fill    color.Color // nil means Scene.FillColor
	Outline color.Color // nil means Scene.OutlineColor
}

func (t Triangle) rasterize(rc *rasterContext) error {
	return fillAndOutline(rc, rc.transform(t.A, t.B, t.C), t.Fill, t.Outline)
}

func fillAndOutline(rc *rasterContext, vertices []Point, fill, outline color.Color) error {
	var interior []Point
	err := FillPolygon(vertices, func(x, y int) {
		interior = append(interior, Point{x, y})
	})
	if err != nil {
		return err
	}

	fill = orDefault(fill, rc.fill)
	for _, p := range interior {
		rc.plot(p.X, p.Y, fill)
	}
	PolygonOutline(vertices, rc.plotter(orDefault(outline, rc.outline)))
	return nil
}

// Seed flood fills the region around a cell, bounded by the cells painted
// by the primitives before it.  The fill does not change the occupancy
// grid seen by later primitives.
type Seed struct {
	At    Point
	Color color.Color // nil means Scene.FillColor
}

func (s Seed) rasterize(rc *rasterContext) error {
	p := transformPoint(rc.ctm, s.At)
	c := orDefault(s.Color, rc.fill)
	return rc.grid.FillTransient(p.X, p.Y, func(x, y int) {
		rc.cells = append(rc.cells, Cell{Point: Point{x, y}, Color: c})
	})
}
