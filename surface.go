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
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// View describes how a [Surface] is turned into an image.
type View struct {
	// CellSize is the width and height of one cell in output pixels.
	CellSize int

	// ScaleX and ScaleY zoom into the grid around the origin.  With a
	// scale of 1 the whole grid is visible, with a scale of 2 only the
	// cells with |x|, |y| <= Radius/2.
	ScaleX, ScaleY float64

	// Axes enables drawing of the coordinate axes, with a tick mark every
	// TickEvery cells.
	Axes      bool
	TickEvery int

	Background color.Color
	AxisColor  color.Color
}

// DefaultView is a white background with black axes and ticks every five
// cells, at ten pixels per cell.
var DefaultView = View{
	CellSize:   10,
	ScaleX:     1,
	ScaleY:     1,
	Axes:       true,
	TickEvery:  5,
	Background: color.White,
	AxisColor:  color.Black,
}

// Surface is a [Plotter] which stores one pixel per grid cell.
// Cells outside the grid are ignored.
type Surface struct {
	grid *Grid
	img  *image.RGBA
}

// NewSurface returns a surface covering the cells of g.
// The surface is initially transparent.
func NewSurface(g *Grid) *Surface {
	n := g.Size()
	return &Surface{
		grid: g,
		img:  image.NewRGBA(image.Rect(0, 0, n, n)),
	}
}

// Set paints the cell (x, y).
func (s *Surface) Set(x, y int, c color.Color) {
	row, col, ok := s.grid.CellIndex(x, y)
	if !ok {
		return
	}
	s.img.Set(col, row, c)
}

// At returns the colour of the cell (x, y).
func (s *Surface) At(x, y int) color.Color {
	row, col, ok := s.grid.CellIndex(x, y)
	if !ok {
		return color.Transparent
	}
	return s.img.At(col, row)
}

// Clear fills the surface with the background colour of v and draws the
// axes, if enabled.
func (s *Surface) Clear(v View) {
	bg := v.Background
	if bg == nil {
		bg = color.Transparent
	}
	xdraw.Draw(s.img, s.img.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)

	if !v.Axes {
		return
	}
	c := v.AxisColor
	if c == nil {
		c = color.Black
	}
	r := s.grid.Radius()
	plot := func(x, y int) { s.Set(x, y, c) }
	Line(-r, 0, r, 0, plot)
	Line(0, -r, 0, r, plot)
	if v.TickEvery <= 0 {
		return
	}
	for k := v.TickEvery; k <= r; k += v.TickEvery {
		for _, t := range []int{-k, k} {
			Line(t, -1, t, 1, plot)
			Line(-1, t, 1, t, plot)
		}
	}
}

// Image renders the visible part of the surface, each cell enlarged to
// v.CellSize pixels.
func (s *Surface) Image(v View) *image.RGBA {
	cellSize := max(v.CellSize, 1)
	n := s.grid.Size()
	dst := image.NewRGBA(image.Rect(0, 0, n*cellSize, n*cellSize))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), s.img, s.visible(v), xdraw.Src, nil)
	return dst
}

// visible returns the part of the cell image which is shown by v.
func (s *Surface) visible(v View) image.Rectangle {
	r := s.grid.Radius()
	hx := visibleRadius(r, v.ScaleX)
	hy := visibleRadius(r, v.ScaleY)
	return image.Rect(r-hx, r-hy, r+hx+1, r+hy+1)
}

func visibleRadius(r int, scale float64) int {
	if scale <= 1 {
		return r
	}
	return int(float64(r) / scale)
}
